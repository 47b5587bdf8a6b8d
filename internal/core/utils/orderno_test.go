package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	no := NewOrderNumber()

	require.True(t, strings.HasPrefix(no, "ORDER"))

	rest := strings.TrimPrefix(no, "ORDER")
	require.Greater(t, len(rest), 6)

	suffix := rest[len(rest)-6:]
	for _, r := range suffix {
		assert.Contains(t, "0123456789ABCDEF", string(r))
	}

	timestamp := rest[:len(rest)-6]
	for _, r := range timestamp {
		assert.Contains(t, "0123456789", string(r))
	}
}

func TestNewOrderNumberVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		no := NewOrderNumber()
		assert.False(t, seen[no], "duplicate order number %s", no)
		seen[no] = true
	}
}
