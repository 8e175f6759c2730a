package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"planora-api/internal/auth"
	"planora-api/internal/model"
	"planora-api/internal/user"
	"planora-api/pkg/encrypter"
	"planora-api/pkg/log"
	"planora-api/pkg/scope"
)

type fakeUserRepo struct {
	byEmail map[string]model.User
	byID    map[string]model.User
	created []user.CreateUserOption
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]model.User{},
		byID:    map[string]model.User{},
	}
}

func (r *fakeUserRepo) add(u model.User) {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
}

func (r *fakeUserRepo) Create(_ context.Context, opt user.CreateUserOption) (model.User, error) {
	r.created = append(r.created, opt)

	u := model.User{
		ID:           "user-" + opt.Email,
		Email:        opt.Email,
		PasswordHash: &opt.PasswordHash,
		FullName:     opt.FullName,
		Role:         opt.Role,
	}
	r.add(u)

	return u, nil
}

func (r *fakeUserRepo) Detail(_ context.Context, id string) (model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ user.ListUserOption) (user.ListUserResult, error) {
	return user.ListUserResult{}, nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ user.UpdateUserOption) (model.User, error) {
	return model.User{}, sql.ErrNoRows
}

type fakeRevoker struct {
	revoked map[string]time.Duration
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: map[string]time.Duration{}}
}

func (r *fakeRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.revoked[jti] = ttl
	return nil
}

func (r *fakeRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := r.revoked[jti]
	return ok, nil
}

func newTestUsecase(t *testing.T, repo user.Repository, revoker auth.Revoker) (*implUsecase, scope.Manager) {
	t.Helper()

	manager, err := scope.New(scope.Config{
		SecretKey: strings.Repeat("s", 32),
		Issuer:    "planora-test",
		TTL:       time.Hour,
	})
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}

	l := log.Init(log.ZapConfig{Level: "fatal"})
	uc := New(l, repo, manager, revoker).(*implUsecase)

	return uc, manager
}

func TestSignup(t *testing.T) {
	repo := newFakeUserRepo()
	uc, manager := newTestUsecase(t, repo, newFakeRevoker())
	ctx := context.Background()

	fullName := "Alice"
	output, err := uc.Signup(ctx, auth.SignupInput{
		Email:    "Alice@Example.com",
		Password: "correct horse",
		FullName: &fullName,
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if output.User.Email != "alice@example.com" {
		t.Errorf("email = %q, want lowercased", output.User.Email)
	}
	if output.User.Role != model.RoleMember {
		t.Errorf("role = %q, want %q", output.User.Role, model.RoleMember)
	}

	payload, err := manager.Verify(output.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if payload.UserID() != output.User.ID {
		t.Errorf("token subject = %q, want %q", payload.UserID(), output.User.ID)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d users, want 1", len(repo.created))
	}
	if repo.created[0].PasswordHash == "correct horse" {
		t.Error("password stored in plaintext")
	}
	if !encrypter.CheckPasswordHash("correct horse", repo.created[0].PasswordHash) {
		t.Error("stored hash does not match the password")
	}
}

func TestSignup_Rejections(t *testing.T) {
	repo := newFakeUserRepo()
	existingHash, _ := encrypter.HashPassword("whatever1")
	repo.add(model.User{ID: "u1", Email: "taken@example.com", PasswordHash: &existingHash, Role: model.RoleMember})

	uc, _ := newTestUsecase(t, repo, newFakeRevoker())
	ctx := context.Background()

	tests := []struct {
		name    string
		input   auth.SignupInput
		wantErr error
	}{
		{name: "bad email", input: auth.SignupInput{Email: "not-an-email", Password: "longenough"}, wantErr: auth.ErrInvalidEmail},
		{name: "short password", input: auth.SignupInput{Email: "new@example.com", Password: "short"}, wantErr: auth.ErrWeakPassword},
		{name: "duplicate email", input: auth.SignupInput{Email: "taken@example.com", Password: "longenough"}, wantErr: auth.ErrEmailExisted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Signup(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := encrypter.HashPassword("hunter22hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	inactive := false
	repo.add(model.User{ID: "u1", Email: "alice@example.com", PasswordHash: &hash, Role: model.RoleMember})
	repo.add(model.User{ID: "u2", Email: "frozen@example.com", PasswordHash: &hash, Role: model.RoleMember, IsActive: &inactive})

	uc, manager := newTestUsecase(t, repo, newFakeRevoker())
	ctx := context.Background()

	output, err := uc.Login(ctx, auth.LoginInput{Email: "alice@example.com", Password: "hunter22hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := manager.Verify(output.Token); err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}

	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{name: "unknown email", input: auth.LoginInput{Email: "ghost@example.com", Password: "hunter22hunter22"}},
		{name: "wrong password", input: auth.LoginInput{Email: "alice@example.com", Password: "wrong password"}},
		{name: "deactivated account", input: auth.LoginInput{Email: "frozen@example.com", Password: "hunter22hunter22"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(ctx, tt.input)
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Errorf("err = %v, want %v", err, auth.ErrInvalidCredentials)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	repo := newFakeUserRepo()
	revoker := newFakeRevoker()
	uc, manager := newTestUsecase(t, repo, revoker)
	ctx := context.Background()

	token, err := manager.Issue("u1", "alice@example.com", model.RoleMember, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	payload, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if err := uc.Logout(ctx, payload); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	ttl, ok := revoker.revoked[payload.ID]
	if !ok {
		t.Fatal("token id was not revoked")
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("revocation ttl = %v, want within (0, 1h]", ttl)
	}

	// A token that is already past its expiry needs no revocation entry.
	uc.clock = func() time.Time { return payload.ExpiresAt.Time.Add(time.Minute) }
	expired := scope.Payload{}
	expired.ID = "expired-jti"
	expired.ExpiresAt = payload.ExpiresAt
	if err := uc.Logout(ctx, expired); err != nil {
		t.Fatalf("Logout expired: %v", err)
	}
	if _, ok := revoker.revoked["expired-jti"]; ok {
		t.Error("expired token should not be added to the revocation list")
	}
}

func TestIsActive(t *testing.T) {
	repo := newFakeUserRepo()
	inactive := false
	deletedAt := time.Now()
	repo.add(model.User{ID: "u1", Email: "alice@example.com", Role: model.RoleMember})
	repo.add(model.User{ID: "u2", Email: "frozen@example.com", Role: model.RoleMember, IsActive: &inactive})
	repo.add(model.User{ID: "u3", Email: "gone@example.com", Role: model.RoleMember, DeletedAt: &deletedAt})

	uc, _ := newTestUsecase(t, repo, newFakeRevoker())
	ctx := context.Background()

	tests := []struct {
		name   string
		userID string
		want   bool
	}{
		{name: "active account", userID: "u1", want: true},
		{name: "deactivated account", userID: "u2", want: false},
		{name: "deleted account", userID: "u3", want: false},
		{name: "unknown account", userID: "nope", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.IsActive(ctx, tt.userID)
			if err != nil {
				t.Fatalf("IsActive: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsActive = %v, want %v", got, tt.want)
			}
		})
	}
}
