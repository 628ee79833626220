package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	c, err := NewCache()
	require.NoError(t, err)

	_, exist := c.Get("nope")
	assert.False(t, exist)
}

func TestSetThenGet(t *testing.T) {
	c, err := NewCache()
	require.NoError(t, err)

	c.Set("k", 42)
	// ristretto admits entries asynchronously
	assert.Eventually(t, func() bool {
		v, exist := c.Get("k")
		return exist && v.(int) == 42
	}, time.Second, 5*time.Millisecond)
}

func TestSetWithTTLExpires(t *testing.T) {
	c, err := NewCache()
	require.NoError(t, err)

	c.SetWithTTL("k", "v", 20*time.Millisecond)
	assert.Eventually(t, func() bool {
		_, exist := c.Get("k")
		return !exist
	}, time.Second, 10*time.Millisecond)

	c.Clear()
}
