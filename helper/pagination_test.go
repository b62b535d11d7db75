package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/user", nil)
	p := ParsePagination(r)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Empty(t, p.Keyword)
}

func TestParsePaginationRejectsGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/user?page=-3&limit=abc&keyword=latte", nil)
	p := ParsePagination(r)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "latte", p.Keyword)
}

func TestOffsetAndMeta(t *testing.T) {
	p := Pagination{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())

	meta := p.MetaFor(25)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, int64(3), meta.TotalPage)
	assert.Equal(t, 3, meta.Page)
}
