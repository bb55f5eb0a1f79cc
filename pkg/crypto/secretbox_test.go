package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretBox(t *testing.T) {
	cipher := NewSecretBox("segredo-da-aplicacao")

	encrypted, err := cipher.Encrypt("Senha@123")
	require.NoError(t, err)
	assert.NotContains(t, encrypted, "Senha@123")

	decrypted, err := cipher.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "Senha@123", decrypted)

	other := NewSecretBox("outro-segredo")
	_, err = other.Decrypt(encrypted)
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = cipher.Decrypt("nao-e-base64!")
	assert.ErrorIs(t, err, ErrDecrypt)
}
