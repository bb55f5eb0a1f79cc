package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNamedSecrets(t *testing.T) {
	secrets, err := ParseNamedSecrets([]string{"bora=abc123", " escola = xyz ", ""})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"bora": "abc123", "escola": "xyz"}, secrets)

	_, err = ParseNamedSecrets([]string{"semvalor"})
	assert.Error(t, err)

	_, err = ParseNamedSecrets([]string{"=valor"})
	assert.Error(t, err)
}

func TestResolveSecrets(t *testing.T) {
	cfg := &Config{
		Asaas:   Asaas{RawKeys: []string{"bora=$aact_123"}},
		Hotmart: Hotmart{RawCredentials: []string{"bora=client:secret:basic"}},
	}

	require.NoError(t, cfg.resolveSecrets())
	assert.Equal(t, "$aact_123", cfg.Asaas.Keys["bora"])
	assert.Equal(t, HotmartCredential{ClientID: "client", ClientSecret: "secret", Basic: "basic"}, cfg.Hotmart.Credentials["bora"])

	cfg.Hotmart.RawCredentials = []string{"bora=client-sem-secret"}
	assert.Error(t, cfg.resolveSecrets())
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{}).IsDevelopment())
	assert.True(t, (&Config{App: App{Env: "dev"}}).IsDevelopment())
	assert.False(t, (&Config{App: App{Env: "production"}}).IsDevelopment())
}
