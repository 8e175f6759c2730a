package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"planora-api/internal/model"
	"planora-api/pkg/log"
	"planora-api/pkg/scope"
)

type fakeRevocation struct {
	revoked map[string]bool
	err     error
}

func (f fakeRevocation) IsRevoked(_ context.Context, jti string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[jti], nil
}

type fakeUsers struct {
	inactive map[string]bool
	err      error
}

func (f fakeUsers) IsActive(_ context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return !f.inactive[userID], nil
}

func newTestManager(t *testing.T) scope.Manager {
	t.Helper()

	manager, err := scope.New(scope.Config{
		SecretKey: strings.Repeat("s", 32),
		Issuer:    "planora-test",
		TTL:       time.Hour,
	})
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}

	return manager
}

func newTestRouter(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", m.Auth(), func(c *gin.Context) {
		sc, _ := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})
	r.GET("/admin", m.Auth(), m.RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func TestAuth(t *testing.T) {
	manager := newTestManager(t)
	l := log.Init(log.ZapConfig{Level: "fatal"})

	memberToken, err := manager.Issue("u1", "member@example.com", model.RoleMember, time.Hour)
	if err != nil {
		t.Fatalf("issue member token: %v", err)
	}
	inactiveToken, err := manager.Issue("u2", "gone@example.com", model.RoleMember, time.Hour)
	if err != nil {
		t.Fatalf("issue inactive token: %v", err)
	}
	revokedToken, err := manager.Issue("u3", "out@example.com", model.RoleMember, time.Hour)
	if err != nil {
		t.Fatalf("issue revoked token: %v", err)
	}
	revokedPayload, err := manager.Verify(revokedToken)
	if err != nil {
		t.Fatalf("verify revoked token: %v", err)
	}

	revocation := fakeRevocation{revoked: map[string]bool{revokedPayload.ID: true}}
	users := fakeUsers{inactive: map[string]bool{"u2": true}}
	m := New(l, manager, revocation, users, nil)
	r := newTestRouter(m)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong prefix", header: "Token " + memberToken, wantStatus: http.StatusUnauthorized},
		{name: "prefix only", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
		{name: "revoked token", header: "Bearer " + revokedToken, wantStatus: http.StatusUnauthorized},
		{name: "inactive account", header: "Bearer " + inactiveToken, wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + memberToken, wantStatus: http.StatusOK, wantBody: "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAuth_FailsClosedOnBackendError(t *testing.T) {
	manager := newTestManager(t)
	l := log.Init(log.ZapConfig{Level: "fatal"})

	token, err := manager.Issue("u1", "member@example.com", model.RoleMember, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	m := New(l, manager, fakeRevocation{err: context.DeadlineExceeded}, fakeUsers{}, nil)
	r := newTestRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRequireRole(t *testing.T) {
	manager := newTestManager(t)
	l := log.Init(log.ZapConfig{Level: "fatal"})

	memberToken, err := manager.Issue("u1", "member@example.com", model.RoleMember, time.Hour)
	if err != nil {
		t.Fatalf("issue member token: %v", err)
	}
	adminToken, err := manager.Issue("a1", "admin@example.com", model.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue admin token: %v", err)
	}

	m := New(l, manager, fakeRevocation{}, fakeUsers{}, nil)
	r := newTestRouter(m)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "member is forbidden", token: memberToken, wantStatus: http.StatusForbidden},
		{name: "admin is allowed", token: adminToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
