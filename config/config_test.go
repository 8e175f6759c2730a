package config

import (
	"strings"
	"testing"
	"time"
)

func setValidEnv(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", strings.Repeat("s", 32))
	t.Setenv("ENCRYPTER_KEY", strings.Repeat("k", 32))
}

func TestLoad(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.JWT.TTL != 24*time.Hour {
		t.Errorf("JWT.TTL = %v, want 24h", cfg.JWT.TTL)
	}
	if cfg.JWT.Leeway != 30*time.Second {
		t.Errorf("JWT.Leeway = %v, want 30s", cfg.JWT.Leeway)
	}
	if cfg.MinIO.AvatarBucket != "planora-avatars" {
		t.Errorf("MinIO.AvatarBucket = %q, want planora-avatars", cfg.MinIO.AvatarBucket)
	}
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing jwt secret",
			env: map[string]string{
				"ENCRYPTER_KEY": strings.Repeat("k", 32),
			},
		},
		{
			name: "short jwt secret",
			env: map[string]string{
				"JWT_SECRET_KEY": "too-short",
				"ENCRYPTER_KEY":  strings.Repeat("k", 32),
			},
		},
		{
			name: "missing encrypter key",
			env: map[string]string{
				"JWT_SECRET_KEY": strings.Repeat("s", 32),
			},
		},
		{
			name: "encrypter key with invalid length",
			env: map[string]string{
				"JWT_SECRET_KEY": strings.Repeat("s", 32),
				"ENCRYPTER_KEY":  strings.Repeat("k", 20),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "")
			t.Setenv("ENCRYPTER_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := Load(); err == nil {
				t.Fatal("Load() error = nil, want config rejection")
			}
		})
	}
}
