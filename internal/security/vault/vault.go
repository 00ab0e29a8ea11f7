// Package vault provides at-rest encryption for sensitive strings such as
// bank details. Values are sealed with AES-256-GCM and stored as
// base64(nonce || ciphertext || tag) with a fresh nonce per call, so two
// encryptions of the same plaintext never produce the same token.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sendbyop/booking-service/internal/domain"
)

const (
	nonceLength = 12
	tagLength   = 16
	keyLength   = 32
)

type Vault struct {
	aead cipher.AEAD
}

// New builds a vault from a base64-encoded 256-bit key.
func New(base64Key string) (*Vault, error) {
	if strings.TrimSpace(base64Key) == "" {
		return nil, fmt.Errorf("encryption key is not configured")
	}

	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key format: %w", err)
	}
	if len(key) != keyLength {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", keyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Vault{aead: aead}, nil
}

// GenerateKey returns a fresh random key in the format New expects.
func GenerateKey() (string, error) {
	key := make([]byte, keyLength)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Encrypt seals plaintext under a fresh random nonce. Empty input passes
// through unchanged.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" {
		return plaintext, nil
	}

	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := v.aead.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, sealed...)), nil
}

// Decrypt reverses Encrypt. Malformed tokens and authentication failures
// both come back as domain.ErrDecryptionFailed.
func (v *Vault) Decrypt(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return token, nil
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: not valid base64", domain.ErrDecryptionFailed)
	}
	if len(raw) < nonceLength+tagLength {
		return "", fmt.Errorf("%w: token too short", domain.ErrDecryptionFailed)
	}

	plaintext, err := v.aead.Open(nil, raw[:nonceLength], raw[nonceLength:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", domain.ErrDecryptionFailed)
	}
	return string(plaintext), nil
}

// LooksEncrypted is a shape heuristic used to avoid double-encrypting
// values that are already tokens: valid base64 decoding to at least
// nonce + tag bytes. A short plaintext that happens to be base64 of
// sufficient length will false-positive; this imprecision is accepted.
func LooksEncrypted(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return false
	}
	return len(raw) >= nonceLength+tagLength
}
