package cache_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univc/univc/internal/cache"
	"github.com/univc/univc/internal/kinds"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "apply<G/1, int>", cache.Key("apply", []string{"G/1", "int"}))
	assert.Equal(t, "nullary<>", cache.Key("nullary", nil))
}

func TestMemoryGetPut(t *testing.T) {
	m := cache.NewMemory()

	_, ok := m.Get("missing")
	assert.False(t, ok)

	m.Put("apply<G/1, int>", cache.Entry{Selected: "primary", ResultKind: kinds.Type})
	e, ok := m.Get("apply<G/1, int>")
	require.True(t, ok)
	assert.Equal(t, "primary", e.Selected)
	assert.True(t, e.ResultKind.Equal(kinds.Type))
	assert.Equal(t, 1, m.Len())
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := cache.NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Put("key", cache.Entry{Selected: "s", ResultKind: kinds.Type})
				m.Get("key")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, m.Len())
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := cache.Open(path)
	require.NoError(t, err)

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	want := cache.Entry{
		Selected:   "unwrap<F<T>>",
		ResultKind: kinds.Template(kinds.Type, kinds.Value(kinds.VTInt)),
	}
	require.NoError(t, s.Put("unwrap<G<int>>", want))

	got, ok, err := s.Get("unwrap<G<int>>")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.Selected, got.Selected)
	assert.True(t, got.ResultKind.Equal(want.ResultKind))
	require.NoError(t, s.Close())

	// Reopen and confirm the entry survived.
	s, err = cache.Open(path)
	require.NoError(t, err)
	got, ok, err = s.Get("unwrap<G<int>>")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "unwrap<F<T>>", got.Selected)
	require.NoError(t, s.Close())
}

func TestStoreOverwrite(t *testing.T) {
	s, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("k", cache.Entry{Selected: "first", ResultKind: kinds.Type}))
	require.NoError(t, s.Put("k", cache.Entry{Selected: "second", ResultKind: kinds.Universal}))

	got, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", got.Selected)
}
