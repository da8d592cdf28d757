package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keySalt = "magicwriting/v1"

// Purposes for which keys are derived from the application secret.
const (
	PurposeSessionCookie = "session-cookie"
	PurposeCSRF          = "csrf"
)

// DeriveKey expands the application secret into a 32-byte key bound to purpose.
// Distinct purposes never share key material.
func DeriveKey(secret []byte, purpose string) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("secret is required")
	}
	r := hkdf.New(sha256.New, secret, []byte(keySalt), []byte(purpose))
	key := make([]byte, 32)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive %s key: %w", purpose, err)
	}
	return key, nil
}

// RandomSecret returns a hex-encoded random secret for processes started without SESSION_SECRET.
// Cookies signed with it do not survive a restart.
func RandomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
