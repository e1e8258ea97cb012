package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVsRedactsCredentials(t *testing.T) {
	got := sanitizeKVs([]interface{}{"api_key", "sk-123", "path", "/units", "Authorization", "Bearer x", "dangling"})
	assert.Equal(t, []interface{}{"api_key", "[REDACTED]", "path", "/units", "Authorization", "[REDACTED]", "dangling"}, got)
}

func TestSanitizeKVsEmpty(t *testing.T) {
	assert.Empty(t, sanitizeKVs(nil))
}
