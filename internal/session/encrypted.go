package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// kdfSalt is fixed: the store protects a single value for a single
// user, there is no cross-user rainbow-table surface.
var kdfSalt = []byte("leadnest-session-store")

const kdfIterations = 100000

// EncryptedStore wraps another Store and encrypts the token at rest
// with AES-GCM. The key is derived from a passphrase using PBKDF2.
//
// Used when LEADNEST_PASSPHRASE is set; otherwise the plain FileStore
// with 0600 permissions is the default.
type EncryptedStore struct {
	inner     Store
	masterKey []byte
}

// NewEncryptedStore creates an encrypting wrapper around inner.
func NewEncryptedStore(inner Store, passphrase string) *EncryptedStore {
	return &EncryptedStore{
		inner:     inner,
		masterKey: pbkdf2.Key([]byte(passphrase), kdfSalt, kdfIterations, 32, sha256.New),
	}
}

// Read returns the decrypted token.
func (s *EncryptedStore) Read() (string, error) {
	stored, err := s.inner.Read()
	if err != nil {
		return "", err
	}
	if stored == "" {
		return "", nil
	}

	raw, err := s.decrypt(stored)
	if err != nil {
		return "", fmt.Errorf("decrypt session token: %w", err)
	}
	return raw, nil
}

// Write encrypts and stores the token.
func (s *EncryptedStore) Write(raw string) error {
	sealed, err := s.encrypt(raw)
	if err != nil {
		return fmt.Errorf("encrypt session token: %w", err)
	}
	return s.inner.Write(sealed)
}

// Clear removes the stored token.
func (s *EncryptedStore) Clear() error {
	return s.inner.Clear()
}

func (s *EncryptedStore) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.masterKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (s *EncryptedStore) decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(s.masterKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, sealed := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
