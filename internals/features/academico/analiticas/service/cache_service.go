package service

import (
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoiza resultados de analíticas, que son consultas pesadas y
// toleran datos con algunos minutos de atraso.
type Cache struct {
	store *gocache.Cache
	ttl   time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Key arma la clave canónica: endpoint + parámetros ordenados alfabéticamente,
// para que el mismo query con los parámetros en otro orden pegue en cache.
func (c *Cache) Key(endpoint string, params map[string]string) string {
	if len(params) == 0 {
		return endpoint
	}
	nombres := make([]string, 0, len(params))
	for nombre, valor := range params {
		if strings.TrimSpace(valor) == "" {
			continue
		}
		nombres = append(nombres, nombre)
	}
	sort.Strings(nombres)

	var b strings.Builder
	b.WriteString(endpoint)
	for _, nombre := range nombres {
		b.WriteByte('?')
		b.WriteString(nombre)
		b.WriteByte('=')
		b.WriteString(params[nombre])
	}
	return b.String()
}

func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

func (c *Cache) Set(key string, value any) {
	c.store.Set(key, value, c.ttl)
}

// Flush vacía el cache completo. Lo usan los imports masivos, que invalidan
// cualquier agregado precalculado.
func (c *Cache) Flush() {
	c.store.Flush()
}
