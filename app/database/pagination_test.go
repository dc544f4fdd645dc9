package database

import (
	"testing"

	"github.com/RzkyNT/E-Masjid-sub001/app/models"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name               string
		page, size, total  int
		wantPage, wantSize int
		wantPages          int
	}{
		{"exact pages", 1, 10, 100, 1, 10, 10},
		{"partial last page", 2, 10, 95, 2, 10, 10},
		{"empty result", 1, 10, 0, 1, 10, 0},
		{"zero page normalized", 0, 10, 30, 1, 10, 3},
		{"zero size defaults", 1, 0, 45, 1, 20, 3},
		{"single record", 1, 20, 1, 1, 20, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.size, tc.total)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantSize, p.PageSize)
			assert.Equal(t, tc.total, p.TotalRecords)
			assert.Equal(t, tc.wantPages, p.TotalPages)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, NewPagination(1, 20, 100).Offset())
	assert.Equal(t, 40, NewPagination(3, 20, 100).Offset())
}

func TestTransactionFilterWhereClause(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		where, args := TransactionFilter{}.whereClause()
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("all filters combined", func(t *testing.T) {
		f := TransactionFilter{
			Kind:     models.KindIncome,
			Category: models.CategoryTuition,
			Month:    3,
			Year:     2024,
			Search:   "spp",
		}
		where, args := f.whereClause()
		assert.Equal(t,
			" WHERE kind = $1 AND category = $2 AND EXTRACT(MONTH FROM occurred_on) = $3"+
				" AND EXTRACT(YEAR FROM occurred_on) = $4 AND notes ILIKE $5",
			where)
		assert.Equal(t, []interface{}{"income", "tuition", 3, 2024, "%spp%"}, args)
	})

	t.Run("search only", func(t *testing.T) {
		where, args := TransactionFilter{Search: "listrik"}.whereClause()
		assert.Equal(t, " WHERE notes ILIKE $1", where)
		assert.Equal(t, []interface{}{"%listrik%"}, args)
	})
}
