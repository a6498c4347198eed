package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemory_SetAndGet(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Set("/data/historico_envios.json", "historico")

	value, ok := c.Get("/data/historico_envios.json")
	assert.True(t, ok)
	assert.Equal(t, "historico", value)

	_, ok = c.Get("/data/Vendas.xlsx")
	assert.False(t, ok)
}

func TestInMemory_Expiration(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("key", 42)

	now = now.Add(59 * time.Second)
	value, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	now = now.Add(time.Second)
	_, ok = c.Get("key")
	assert.False(t, ok, "entrada deve expirar ao atingir o TTL")
}

func TestInMemory_DeleteAndClear(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestInMemory_ZeroTTLDisablesCache(t *testing.T) {
	c := New[int](0)
	defer c.Close()

	c.Set("key", 1)

	_, ok := c.Get("key")
	assert.False(t, ok)
}
