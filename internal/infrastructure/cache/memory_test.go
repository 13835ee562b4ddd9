package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	value := []byte(`{"a":1}`)
	store.Set("k", value, 0)
	value[0] = 'x'

	got, ok := store.Get("k")
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(got))

	store.Delete("k")
	_, ok = store.Get("k")
	assert.False(t, ok)
}

func TestMemoryStore_Expiration(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	store.Set("short", []byte("v"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	_, ok := store.Get("short")
	assert.False(t, ok)
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
