package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	var evicted []string
	c, err := NewLRU[string, int](2, 0, func(key string, _ int) {
		evicted = append(evicted, key)
	})
	require.NoError(t, err)

	c.GetOrAdd("a", 1)
	c.GetOrAdd("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.GetOrAdd("c", 3)

	assert.Equal(t, []string{"b"}, evicted)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestLRU_GetOrAddKeepsFirstValue(t *testing.T) {
	t.Parallel()

	c, err := NewLRU[string, int](4, 0, nil)
	require.NoError(t, err)

	actual, loaded := c.GetOrAdd("a", 1)
	assert.False(t, loaded)
	assert.Equal(t, 1, actual)

	actual, loaded = c.GetOrAdd("a", 2)
	assert.True(t, loaded)
	assert.Equal(t, 1, actual)
}

func TestLRU_ConcurrentGetOrAddAgreesOnOneValue(t *testing.T) {
	t.Parallel()

	c, err := NewLRU[string, *int](4, 0, nil)
	require.NoError(t, err)

	const workers = 16
	results := make([]*int, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			candidate := new(int)
			results[i], _ = c.GetOrAdd("owner", candidate)
		}()
	}
	wg.Wait()

	for _, result := range results {
		assert.Same(t, results[0], result)
	}
}

func TestLRU_RemoveAndPurge(t *testing.T) {
	t.Parallel()

	removed := 0
	c, err := NewLRU[string, int](4, 0, func(string, int) { removed++ })
	require.NoError(t, err)

	c.GetOrAdd("a", 1)
	c.GetOrAdd("b", 2)

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	c.Purge()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 2, removed)
}

func TestNewLRU_RejectsInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := NewLRU[string, int](0, 0, nil)
	assert.Error(t, err)
}

func TestLRU_PeekDoesNotTouch(t *testing.T) {
	t.Parallel()

	var evicted []string
	c, err := NewLRU[string, int](2, 0, func(key string, _ int) {
		evicted = append(evicted, key)
	})
	require.NoError(t, err)

	c.GetOrAdd("a", 1)
	c.GetOrAdd("b", 2)

	v, ok := c.Peek("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Peek("missing")
	assert.False(t, ok)

	c.GetOrAdd("c", 3)

	assert.Equal(t, []string{"a"}, evicted)
}

func TestLRU_ExpiredEntryIsReplaced(t *testing.T) {
	t.Parallel()

	c, err := NewLRU[string, int](4, 200*time.Millisecond, nil)
	require.NoError(t, err)

	c.GetOrAdd("a", 1)
	time.Sleep(400 * time.Millisecond)

	_, ok := c.Peek("a")
	assert.False(t, ok)

	actual, loaded := c.GetOrAdd("a", 2)
	assert.False(t, loaded)
	assert.Equal(t, 2, actual)

	actual, loaded = c.GetOrAdd("a", 3)
	assert.True(t, loaded)
	assert.Equal(t, 2, actual)
}
