package cmd

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchdaycli/matchday/internal/config"
	"github.com/matchdaycli/matchday/internal/errors"
)

func TestConfigValue(t *testing.T) {
	cfg := config.Config{
		BaseURL:   "http://localhost:8000",
		PageSize:  50,
		LogLevel:  "info",
		LogFormat: "text",
	}

	cases := map[string]string{
		"base_url":   "http://localhost:8000",
		"page_size":  "50",
		"log_level":  "info",
		"log_format": "text",
	}
	for key, want := range cases {
		got, err := configValue(cfg, key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	_, err := configValue(cfg, "bogus")
	require.Error(t, err)
}

func TestSetConfigValue(t *testing.T) {
	cfg := config.DefaultConfig()

	require.NoError(t, setConfigValue(&cfg, "base_url", "https://fantasy.example.com"))
	assert.Equal(t, "https://fantasy.example.com", cfg.BaseURL)

	require.NoError(t, setConfigValue(&cfg, "page_size", "25"))
	assert.Equal(t, 25, cfg.PageSize)

	err := setConfigValue(&cfg, "page_size", "zero")
	require.Error(t, err)

	err = setConfigValue(&cfg, "bogus", "value")
	var mdErr *errors.MatchdayError
	require.ErrorAs(t, err, &mdErr)
	assert.Equal(t, errors.ErrCodeConfigInvalid, mdErr.Code)
}

func TestDecodeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user@example.com",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims := decodeClaims(signed)

	assert.Equal(t, "user@example.com", claims["subject"])
	assert.NotEmpty(t, claims["expires"])
}

func TestDecodeClaimsNonJWT(t *testing.T) {
	assert.Empty(t, decodeClaims("opaque-token"))
}
