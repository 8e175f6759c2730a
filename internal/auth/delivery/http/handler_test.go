package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"planora-api/internal/auth"
	"planora-api/internal/model"
	"planora-api/pkg/log"
	"planora-api/pkg/scope"
)

type fakeUsecase struct {
	signups []auth.SignupInput
}

func (uc *fakeUsecase) Signup(_ context.Context, input auth.SignupInput) (auth.TokenOutput, error) {
	uc.signups = append(uc.signups, input)
	return auth.TokenOutput{Token: "token", User: model.User{Email: input.Email}}, nil
}

func (uc *fakeUsecase) Login(_ context.Context, input auth.LoginInput) (auth.TokenOutput, error) {
	return auth.TokenOutput{Token: "token", User: model.User{Email: input.Email}}, nil
}

func (uc *fakeUsecase) Logout(context.Context, scope.Payload) error { return nil }

func (uc *fakeUsecase) Me(context.Context, model.Scope) (model.User, error) {
	return model.User{}, nil
}

func (uc *fakeUsecase) IsActive(context.Context, string) (bool, error) { return true, nil }

func newTestRouter(uc auth.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := New(log.Init(log.ZapConfig{Level: "fatal"}), uc, nil)

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	return r
}

func TestSignup_BadRequestBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing password", body: `{"email":"a@b.c"}`},
		{name: "missing email", body: `{"password":"secret-pw"}`},
		{name: "malformed json", body: `{"email":`},
		{name: "wrong field type", body: `{"email":1,"password":"secret-pw"}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUsecase{}
			r := newTestRouter(uc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Signup with %s: status = %d, want %d (body %s)", tt.name, w.Code, http.StatusBadRequest, w.Body.String())
			}
			if len(uc.signups) != 0 {
				t.Errorf("Signup with %s reached the usecase", tt.name)
			}
		})
	}
}

func TestLogin_BadRequestBody(t *testing.T) {
	r := newTestRouter(&fakeUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Login status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestSignup_ValidBody(t *testing.T) {
	uc := &fakeUsecase{}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"email":"a@b.c","password":"secret-pw"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Signup status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body.String())
	}
	if len(uc.signups) != 1 || uc.signups[0].Email != "a@b.c" {
		t.Errorf("Signup inputs = %+v, want one with email a@b.c", uc.signups)
	}
}
