package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKeyCanonicaliza(t *testing.T) {
	c := NewCache(time.Minute)

	a := c.Key("analiticas/asistencia", map[string]string{"agrupar": "modulo", "cohorte": "x"})
	b := c.Key("analiticas/asistencia", map[string]string{"cohorte": "x", "agrupar": "modulo"})
	assert.Equal(t, a, b)

	// los parámetros vacíos no cambian la clave
	vacio := c.Key("analiticas/asistencia", map[string]string{"agrupar": "modulo", "cohorte": "x", "desde": ""})
	assert.Equal(t, a, vacio)

	otro := c.Key("analiticas/asistencia", map[string]string{"agrupar": "semana", "cohorte": "x"})
	assert.NotEqual(t, a, otro)
}

func TestCacheGetSet(t *testing.T) {
	c := NewCache(time.Minute)
	key := c.Key("analiticas/dashboard", nil)

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Set(key, 42)
	valor, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, 42, valor)
}

func TestCacheExpira(t *testing.T) {
	c := NewCache(10 * time.Millisecond)
	c.Set("k", "v")

	time.Sleep(30 * time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCacheFlush(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Flush()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
