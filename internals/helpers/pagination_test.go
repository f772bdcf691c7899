package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolverEnRequest(t *testing.T, url string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var paging Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		paging = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return paging
}

func TestResolvePagingDefaults(t *testing.T) {
	paging := resolverEnRequest(t, "/", 50, 200)
	assert.Equal(t, 1, paging.Page)
	assert.Equal(t, 50, paging.PerPage)
	assert.Equal(t, 0, paging.Offset)
}

func TestResolvePagingCalculaOffset(t *testing.T) {
	paging := resolverEnRequest(t, "/?page=3&per_page=20", 50, 200)
	assert.Equal(t, 3, paging.Page)
	assert.Equal(t, 20, paging.PerPage)
	assert.Equal(t, 40, paging.Offset)
}

func TestResolvePagingAplicaTope(t *testing.T) {
	paging := resolverEnRequest(t, "/?per_page=9999", 50, 200)
	assert.Equal(t, 200, paging.PerPage)
}

func TestResolvePagingValoresInvalidos(t *testing.T) {
	paging := resolverEnRequest(t, "/?page=-2&per_page=abc", 50, 200)
	assert.Equal(t, 1, paging.Page)
	assert.Equal(t, 50, paging.PerPage)
}

func TestResolvePagingAliasLimit(t *testing.T) {
	paging := resolverEnRequest(t, "/?limit=30", 50, 200)
	assert.Equal(t, 30, paging.PerPage)
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(101, 2, 50)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	vacia := BuildPaginationFromPage(0, 1, 50)
	assert.Equal(t, 1, vacia.TotalPages)
	assert.False(t, vacia.HasNext)
	assert.False(t, vacia.HasPrev)
}
