package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode("tck-", 12)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "tck-"))
	assert.Len(t, code, len("tck-")+12)

	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for _, r := range strings.TrimPrefix(code, "tck-") {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerateCode_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := GenerateCode("", 16)
		require.NoError(t, err)
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
