package helper

import (
	"net/http"
	"strconv"
)

// Pagination is parsed from query parameters on list endpoints.
type Pagination struct {
	Page    int
	Limit   int
	Keyword string
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// MetaFor builds the list meta block from a total row count.
func (p Pagination) MetaFor(total int64) Meta {
	totalPage := (total + int64(p.Limit) - 1) / int64(p.Limit)
	return Meta{
		Page:      p.Page,
		Limit:     p.Limit,
		Total:     total,
		TotalPage: totalPage,
	}
}

// ParsePagination reads page, limit and keyword with sane defaults.
func ParsePagination(r *http.Request) Pagination {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	return Pagination{
		Page:    page,
		Limit:   limit,
		Keyword: q.Get("keyword"),
	}
}
