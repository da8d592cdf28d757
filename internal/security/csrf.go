package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// CSRFGenerator generates and validates form tokens using HMAC-SHA256.
// Tokens are bound to the writer's session ID, so no token state is stored.
type CSRFGenerator struct {
	key []byte
}

// NewCSRFGenerator derives the token key from the application secret.
func NewCSRFGenerator(secret []byte) (*CSRFGenerator, error) {
	key, err := DeriveKey(secret, PurposeCSRF)
	if err != nil {
		return nil, err
	}
	return &CSRFGenerator{key: key}, nil
}

// GenerateToken returns the token for the given session ID.
func (g *CSRFGenerator) GenerateToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("session ID is required")
	}
	mac := hmac.New(sha256.New, g.key)
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// ValidateToken reports whether token belongs to sessionID.
func (g *CSRFGenerator) ValidateToken(sessionID, token string) bool {
	if sessionID == "" || token == "" {
		return false
	}
	expected, err := g.GenerateToken(sessionID)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(token))
}
