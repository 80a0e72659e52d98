package collection

// Page is the slice of a filtered collection visible to the view binding,
// plus navigation metadata.
type Page[T any] struct {
	VisibleItems []T
	CurrentPage  int
	TotalPages   int
	HasPrev      bool
	HasNext      bool
}

// Paginate slices a filtered collection into fixed-size pages. The requested
// page is clamped into [1, TotalPages] before slicing; callers cannot observe
// an out-of-range page. TotalPages is at least 1 even for an empty collection.
func Paginate[T any](filtered []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page = ClampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page[T]{
		VisibleItems: filtered[start:end],
		CurrentPage:  page,
		TotalPages:   totalPages,
		HasPrev:      page > 1,
		HasNext:      page < totalPages,
	}
}

// ClampPage forces a page number into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
