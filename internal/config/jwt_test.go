package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := JWTConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestJWTConfigFromEnv_CustomExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "72")

	cfg, err := JWTConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)
}

func TestJWTConfigFromEnv_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := JWTConfigFromEnv()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestJWTConfigFromEnv_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, hours := range []string{"abc", "1.5", "0", "-3"} {
		t.Setenv("JWT_EXPIRATION_HOURS", hours)
		cfg, err := JWTConfigFromEnv()
		assert.Nil(t, cfg, "hours=%q", hours)
		assert.Error(t, err, "hours=%q", hours)
	}
}

func TestJWTConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     JWTConfig
		wantErr bool
	}{
		{"valid", JWTConfig{Secret: "s", ExpirationHours: 24}, false},
		{"empty secret", JWTConfig{ExpirationHours: 24}, true},
		{"zero hours", JWTConfig{Secret: "s"}, true},
		{"negative hours", JWTConfig{Secret: "s", ExpirationHours: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
