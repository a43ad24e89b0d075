package auth

import (
	"context"
	"errors"

	"github.com/fivetwenty-io/lendingclub/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoAPIKey = errors.New("no API key configured")
)

// TokenManager supplies the value of the Authorization header.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// APIKeyManager provides a static API key. LendingClub keys do not expire
// and cannot be refreshed.
type APIKeyManager struct {
	apiKey string
}

// NewAPIKeyManager creates a token manager for a static API key.
func NewAPIKeyManager(apiKey string) *APIKeyManager {
	return &APIKeyManager{apiKey: apiKey}
}

// GetToken returns the API key.
func (m *APIKeyManager) GetToken(ctx context.Context) (string, error) {
	if m.apiKey == "" {
		return "", ErrNoAPIKey
	}

	return m.apiKey, nil
}

// String masks the key so it never ends up in logs.
func (m *APIKeyManager) String() string {
	return Mask(m.apiKey)
}

// Mask hides all but the last four characters of a secret.
func Mask(secret string) string {
	const visible = 4

	if len(secret) <= visible {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-visible:]
}
