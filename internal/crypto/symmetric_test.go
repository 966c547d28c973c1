package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptGCM_RoundTrip(t *testing.T) {
	key := make([]byte, 32)
	plaintext := []byte(`{"name":"Personal"}`)

	blob, err := encryptGCM(key, plaintext, []byte(aadVaultContent))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(blob), minEncryptedContentLength)

	decrypted, err := decryptGCM(key, blob, []byte(aadVaultContent))
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecryptGCM_WrongKey(t *testing.T) {
	key := make([]byte, 32)
	blob, err := encryptGCM(key, []byte("secret"), nil)
	require.NoError(t, err)

	wrongKey := make([]byte, 32)
	wrongKey[0] = 1
	_, err = decryptGCM(wrongKey, blob, nil)

	assert.ErrorIs(t, err, ErrDecryption)
}

func TestDecryptGCM_TooShort(t *testing.T) {
	_, err := decryptGCM(make([]byte, 32), []byte{1, 2, 3}, nil)
	assert.Error(t, err)
}

func TestCacheCipher_RoundTrip(t *testing.T) {
	cipher := NewCacheCipher("device-secret")

	encoded, err := cipher.EncryptString("encrypted-share-content")
	require.NoError(t, err)
	assert.NotEqual(t, "encrypted-share-content", encoded)

	decoded, err := cipher.DecryptString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "encrypted-share-content", decoded)
}

func TestCacheCipher_WrongSecret(t *testing.T) {
	encoded, err := NewCacheCipher("device-secret").EncryptString("payload")
	require.NoError(t, err)

	_, err = NewCacheCipher("other-secret").DecryptString(encoded)

	assert.ErrorIs(t, err, ErrDecryption)
}
