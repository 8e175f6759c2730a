package scope

import (
	"context"

	"planora-api/internal/model"
)

type PayloadCtxKey struct{}
type ScopeCtxKey struct{}

// SetPayloadToContext sets the payload to context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

// GetPayloadFromContext gets the payload from context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

// GetUserIDFromContext gets the subject from context.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	payload, ok := GetPayloadFromContext(ctx)
	if !ok {
		return "", false
	}
	return payload.UserID(), true
}

// SetScopeToContext sets the scope to context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext gets the scope from context.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}

// NewScope builds model.Scope from a verified Payload.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID: payload.UserID(),
		Email:  payload.Email,
		Role:   payload.Role,
		JTI:    payload.ID,
	}
}
