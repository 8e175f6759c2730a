package scope

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret-key-0123456789abcdef-0123"

func newTestManager(t *testing.T, clock func() time.Time, leeway time.Duration) *implManager {
	t.Helper()
	m, err := New(Config{SecretKey: testSecret, Issuer: "planora-api", TTL: time.Hour})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	impl := m.(*implManager)
	if clock != nil {
		impl.clock = clock
	}
	impl.leeway = leeway
	return impl
}

func TestNew_SecretRequired(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		wantOK bool
	}{
		{name: "empty secret", secret: "", wantOK: false},
		{name: "short secret", secret: "too-short", wantOK: false},
		{name: "valid secret", secret: testSecret, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Config{SecretKey: tt.secret})
			if tt.wantOK && err != nil {
				t.Errorf("New() error = %v, want nil", err)
			}
			if !tt.wantOK && !errors.Is(err, ErrSecretRequired) {
				t.Errorf("New() error = %v, want ErrSecretRequired", err)
			}
		})
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := t0
	m := newTestManager(t, func() time.Time { return now }, 0)

	token, err := m.Issue("u1", "u1@example.com", "member", 3600*time.Second)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	now = t0.Add(10 * time.Second)
	payload, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if payload.UserID() != "u1" {
		t.Errorf("Verify() subject = %q, want %q", payload.UserID(), "u1")
	}
	if payload.Role != "member" {
		t.Errorf("Verify() role = %q, want %q", payload.Role, "member")
	}
	if payload.ID == "" {
		t.Error("Verify() jti is empty")
	}
	if !payload.IssuedAt.Time.Equal(t0) {
		t.Errorf("Verify() issued_at = %v, want %v", payload.IssuedAt.Time, t0)
	}
}

func TestVerify_Expired(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := t0
	m := newTestManager(t, func() time.Time { return now }, 0)

	token, err := m.Issue("u1", "", "member", 3600*time.Second)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	now = t0.Add(3601 * time.Second)
	if _, err := m.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerify_LeewayToleratesSkew(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := t0
	m := newTestManager(t, func() time.Time { return now }, 30*time.Second)

	token, err := m.Issue("u1", "", "member", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// 10s past expiry but within the 30s leeway window.
	now = t0.Add(time.Hour + 10*time.Second)
	if _, err := m.Verify(token); err != nil {
		t.Errorf("Verify() within leeway error = %v, want nil", err)
	}

	// Past expiry plus leeway.
	now = t0.Add(time.Hour + 31*time.Second)
	if _, err := m.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() past leeway error = %v, want ErrTokenExpired", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	m := newTestManager(t, nil, 0)

	token, err := m.Issue("u1", "", "member", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d parts, want 3", len(parts))
	}

	sig := []byte(parts[2])
	for i := range sig {
		mutated := make([]byte, len(sig))
		copy(mutated, sig)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(mutated)

		if _, err := m.Verify(tampered); !errors.Is(err, ErrBadSignature) && !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("Verify() tampered byte %d error = %v, want bad signature or malformed", i, err)
		}
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	m1 := newTestManager(t, nil, 0)

	other, err := New(Config{SecretKey: "another-secret-key-0123456789abcdef"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	token, err := other.Issue("u1", "", "member", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := m1.Verify(token); !errors.Is(err, ErrBadSignature) {
		t.Errorf("Verify() error = %v, want ErrBadSignature", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	m := newTestManager(t, nil, 0)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: "aaaa.bbbb"},
		{name: "bad base64", token: "!!!.???.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token); !errors.Is(err, ErrTokenMalformed) {
				t.Errorf("Verify(%q) error = %v, want ErrTokenMalformed", tt.token, err)
			}
		})
	}
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	m := newTestManager(t, nil, 0)

	// alg=none with an empty signature must never verify.
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJzdWIiOiJ1MSIsInJvbGUiOiJhZG1pbiJ9."
	if _, err := m.Verify(unsigned); err == nil {
		t.Error("Verify() accepted alg=none token")
	}
}

func TestVerify_Concurrent(t *testing.T) {
	m := newTestManager(t, nil, 0)

	token, err := m.Issue("u1", "", "member", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func() {
			_, err := m.Verify(token)
			done <- err
		}()
	}
	for i := 0; i < 16; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent Verify() error = %v", err)
		}
	}
}
