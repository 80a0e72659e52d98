package collection

// View composes the cache, filter engine, and paginator into the per-resource
// collection view state: filter criteria and current page position. Derived
// values (filtered items, total pages, visible slice) are recomputed on every
// access, never stored. The page is re-clamped whenever the items or the
// criteria change, so a filter that shrinks the result set below the current
// page can never leave an empty page showing.
type View[T Record] struct {
	cache    *Cache[T]
	schema   Schema[T]
	project  func([]T) []T
	criteria Criteria
	page     int
	pageSize int
}

// ViewOption configures a View.
type ViewOption[T Record] func(*View[T])

// WithProjection sets the enrichment projection applied to the cached items
// before filtering. It must be pure: display-ready copies, no mutation of the
// cached records.
func WithProjection[T Record](project func([]T) []T) ViewOption[T] {
	return func(v *View[T]) { v.project = project }
}

// NewView creates a view over a cache with the given filter schema and page size.
func NewView[T Record](cache *Cache[T], schema Schema[T], pageSize int, opts ...ViewOption[T]) *View[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	v := &View[T]{
		cache:    cache,
		schema:   schema,
		criteria: make(Criteria),
		page:     1,
		pageSize: pageSize,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetCriterion sets or replaces the criterion for a filter key and re-clamps
// the page. An empty criterion removes the key.
func (v *View[T]) SetCriterion(key string, crit Criterion) {
	if crit.IsEmpty() {
		delete(v.criteria, key)
	} else {
		v.criteria[key] = crit
	}
	v.clamp()
}

// ClearCriteria removes all criteria and re-clamps the page.
func (v *View[T]) ClearCriteria() {
	v.criteria = make(Criteria)
	v.clamp()
}

// Criteria returns a copy of the active criteria.
func (v *View[T]) Criteria() Criteria {
	return v.criteria.Clone()
}

// PageSize returns the fixed page size of the view.
func (v *View[T]) PageSize() int {
	return v.pageSize
}

// SetPage requests a page; the value is clamped into the valid range.
func (v *View[T]) SetPage(page int) {
	v.page = page
	v.clamp()
}

// Next advances one page. No-op on the last page.
func (v *View[T]) Next() {
	if v.Page().HasNext {
		v.page++
	}
}

// Prev goes back one page. No-op on the first page.
func (v *View[T]) Prev() {
	if v.Page().HasPrev {
		v.page--
	}
}

// First jumps to the first page.
func (v *View[T]) First() {
	v.page = 1
}

// Page recomputes the filtered collection and returns the visible slice with
// navigation metadata. The stored page position is clamped against the
// current result set, covering item changes made directly on the cache.
func (v *View[T]) Page() Page[T] {
	page := Paginate(v.filtered(), v.page, v.pageSize)
	v.page = page.CurrentPage
	return page
}

// FilteredLen returns the size of the filtered collection.
func (v *View[T]) FilteredLen() int {
	return len(v.filtered())
}

func (v *View[T]) filtered() []T {
	items := v.cache.Items()
	if v.project != nil {
		items = v.project(items)
	}
	return Filter(items, v.schema, v.criteria)
}

func (v *View[T]) clamp() {
	v.page = v.Page().CurrentPage
}
