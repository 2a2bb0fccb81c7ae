package report

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
)

// Encrypt seals a rendered report with AES-256-GCM, deriving the key from
// the patient access key. The random nonce is prepended to the ciphertext.
func Encrypt(plaintext []byte, accessKey string) ([]byte, error) {
	gcm, err := newGCM(accessKey)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt reverses Encrypt. A wrong access key yields an authentication
// error, not garbage output.
func Decrypt(sealed []byte, accessKey string) ([]byte, error) {
	gcm, err := newGCM(accessKey)
	if err != nil {
		return nil, err
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("sealed report too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed report: %w", err)
	}
	return plaintext, nil
}

func newGCM(accessKey string) (cipher.AEAD, error) {
	key := sha256.Sum256([]byte(accessKey))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
