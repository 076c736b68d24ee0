package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetAs(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("bars:IBM", []int{1, 2, 3}, time.Minute)
	c.Set("count", 7, time.Minute)

	bars, ok := GetAs[[]int](c, "bars:IBM")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, bars)

	_, ok = GetAs[string](c, "count")
	assert.False(t, ok, "wrong type is a miss")

	_, ok = GetAs[int](c, "missing")
	assert.False(t, ok)

	c.Delete("count")
	_, ok = GetAs[int](c, "count")
	assert.False(t, ok)

	c.Flush()
	_, ok = GetAs[[]int](c, "bars:IBM")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("short", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("short")
	assert.False(t, ok)
}
