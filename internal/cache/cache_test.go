package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "jobs:all", JobListKey(""))
	assert.Equal(t, "jobs:all", JobListKey("all"))
	assert.Equal(t, "jobs:quoted", JobListKey("quoted"))
	assert.Equal(t, "job:abc", JobKey("abc"))
	assert.Equal(t, "documents:j1:quote", DocumentListKey("j1", "quote"))
	assert.Equal(t, "documents:j1:all", DocumentListKey("j1", ""))
	assert.Equal(t, "payments:j1", PaymentListKey("j1"))
}

// a nil cache is how the app runs without Redis; every operation must
// be a no-op instead of a panic
func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dest []string
	assert.False(t, c.GetJSON(ctx, "customers", &dest))

	c.SetJSON(ctx, "customers", []string{"x"})
	c.Invalidate(ctx, "customers")
	c.InvalidatePrefix(ctx, "jobs:")
}
