package auth_test

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/lendingclub/internal/auth"
	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyManager_GetToken(t *testing.T) {
	t.Parallel()

	t.Run("returns the key", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewAPIKeyManager("secret-key")

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "secret-key", token)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewAPIKeyManager("")

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoAPIKey)
	})
}

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		secret   string
		expected string
	}{
		{name: "empty", secret: "", expected: "***"},
		{name: "short", secret: "abcd", expected: "***"},
		{name: "long", secret: "abcdefgh1234", expected: "***1234"},
		{name: "masked prefix", secret: "key-5678", expected: constants.MaskedSecret + "5678"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, auth.Mask(tt.secret))
		})
	}
}

func TestAPIKeyManager_String(t *testing.T) {
	t.Parallel()

	manager := auth.NewAPIKeyManager("abcdefgh1234")
	assert.Equal(t, "***1234", manager.String())
	assert.NotContains(t, manager.String(), "abcdefgh")
}
