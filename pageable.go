package pagekit

import (
	"fmt"

	"gorm.io/gorm"
)

// Pageable is the concrete paging descriptor produced from a PageSpec:
// clamped, defaulted and with the sort key resolved to a column. It is what
// gets applied to the query layer.
type Pageable struct {
	PageIndex int
	PageSize  int
	// Sort is empty for unsorted results.
	Sort Orderings
}

type pageableOptions struct {
	defaultPageSize int
	maxPageSize     int
}

type PageableOption func(*pageableOptions)

// WithDefaultPageSize overrides DefaultPageSize for requests that omit the
// page size. The value is subject to the same clamp as explicit sizes.
func WithDefaultPageSize(size int) PageableOption {
	return func(o *pageableOptions) {
		o.defaultPageSize = size
	}
}

// WithMaxPageSize overrides the MaxPageSize clamp bound.
func WithMaxPageSize(size int) PageableOption {
	return func(o *pageableOptions) {
		o.maxPageSize = size
	}
}

// PageableOf translates a nullable PageSpec into a Pageable.
//
// Defaulting and clamping policy:
//   - nil spec: first page, default size, unsorted.
//   - nil page index: FirstPage; negative page index: clamped to FirstPage.
//   - nil page size: the configured default. Whatever the origin, the size is
//     clamped to [MinPageSize, max] - the clamp guards the query layer against
//     unbounded page sizes.
//   - nil sort by: unsorted; the direction is never applied without a key.
//   - nil or empty columnMapping: unsorted, the sort key is ignored. An
//     absent enumeration means the caller opted out of sorting entirely.
//   - sort by present with a non-empty mapping: resolved case-sensitively;
//     an unknown key yields *UnknownSortByError. A nil direction defaults to
//     ascending.
func PageableOf(spec *PageSpec, columnMapping ColumnMapping, opts ...PageableOption) (Pageable, error) {
	options := pageableOptions{
		defaultPageSize: DefaultPageSize,
		maxPageSize:     MaxPageSize,
	}
	for _, opt := range opts {
		opt(&options)
	}

	ret := Pageable{
		PageIndex: FirstPage,
		PageSize:  ClampPageSizeMax(options.defaultPageSize, options.maxPageSize),
	}
	if spec == nil {
		return ret, nil
	}

	if spec.PageIndex != nil {
		ret.PageIndex = ClampPageIndex(*spec.PageIndex)
	}
	if spec.PageSize != nil {
		ret.PageSize = ClampPageSizeMax(*spec.PageSize, options.maxPageSize)
	}

	if spec.SortBy != nil && len(columnMapping) > 0 {
		columnName, err := ResolveSortBy(*spec.SortBy, columnMapping)
		if err != nil {
			return Pageable{}, err
		}

		direction := SortAsc
		if spec.SortDirection != nil {
			if !spec.SortDirection.Valid() {
				return Pageable{}, fmt.Errorf("invalid sort direction '%s'", *spec.SortDirection)
			}
			direction = *spec.SortDirection
		}

		ret.Sort = Orderings{{Column: columnName, Direction: direction}}
	}

	return ret, nil
}

// Offset returns the number of records to skip.
func (p Pageable) Offset() int {
	return p.PageIndex * p.PageSize
}

// Apply applies ordering, limit and offset to a gorm query. Returns an error
// if the descriptor cannot be applied.
func (p Pageable) Apply(db *gorm.DB) (*gorm.DB, error) {
	err := p.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = p.Sort.Apply(db)

	return db.Limit(p.PageSize).Offset(p.Offset()), nil
}

func (p Pageable) validate() error {
	if p.PageIndex < FirstPage {
		return fmt.Errorf("negative page index %d", p.PageIndex)
	}
	if p.PageSize < MinPageSize {
		return fmt.Errorf("page size %d below minimum", p.PageSize)
	}

	return p.Sort.validate()
}
