package collection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeRecords(n int) []testRecord {
	items := make([]testRecord, n)
	for i := range items {
		items[i] = testRecord{ID: fmt.Sprintf("%d", i+1)}
	}
	return items
}

func TestPaginateMetadata(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		page       int
		pageSize   int
		wantPage   int
		wantTotal  int
		wantLen    int
		wantPrev   bool
		wantNext   bool
	}{
		{"empty collection", 0, 1, 6, 1, 1, 0, false, false},
		{"single page", 4, 1, 6, 1, 1, 4, false, false},
		{"exact fill", 12, 2, 6, 2, 2, 6, true, false},
		{"partial last page", 11, 2, 6, 2, 2, 5, true, false},
		{"middle page", 20, 2, 6, 2, 4, 6, true, true},
		{"page clamped high", 5, 9, 2, 3, 3, 1, true, false},
		{"page clamped low", 5, 0, 2, 1, 3, 2, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(makeRecords(tt.count), tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page.CurrentPage)
			assert.Equal(t, tt.wantTotal, page.TotalPages)
			assert.Len(t, page.VisibleItems, tt.wantLen)
			assert.Equal(t, tt.wantPrev, page.HasPrev)
			assert.Equal(t, tt.wantNext, page.HasNext)
		})
	}
}

func TestPaginateConcatenationReconstructsCollection(t *testing.T) {
	for _, count := range []int{0, 1, 5, 6, 7, 12, 13} {
		t.Run(fmt.Sprintf("%d items", count), func(t *testing.T) {
			items := makeRecords(count)
			pageSize := 6

			var reconstructed []testRecord
			first := Paginate(items, 1, pageSize)
			for p := 1; p <= first.TotalPages; p++ {
				page := Paginate(items, p, pageSize)
				assert.LessOrEqual(t, len(page.VisibleItems), pageSize)
				reconstructed = append(reconstructed, page.VisibleItems...)
			}
			assert.Equal(t, items, reconstructed)
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-5, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(7, 3))
}
