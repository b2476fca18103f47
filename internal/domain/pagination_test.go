package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_TotalPages(t *testing.T) {
	cases := []struct {
		name       string
		pageSize   int
		totalItems int
		want       int
	}{
		{"exact multiple", 10, 30, 3},
		{"remainder adds a page", 10, 31, 4},
		{"fewer items than a page", 10, 3, 1},
		{"no items still shows one page", 10, 0, 1},
		{"zero page size defaults to one page", 0, 50, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Pagination{Page: 99, PageSize: c.pageSize, TotalItems: c.totalItems}
			// Page is deliberately nonsense: the count must come from the
			// totals alone.
			assert.Equal(t, c.want, p.TotalPages())
		})
	}
}
