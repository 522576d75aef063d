package pagekit

import (
	"github.com/samber/lo"
)

// Pagination is the metadata block of a Page. All fields are derived from the
// applied Pageable and the total element count; the structure is stable and
// suitable for direct JSON emission.
type Pagination struct {
	PageIndex         int   `json:"pageIndex"`
	PageSize          int   `json:"pageSize"`
	TotalElementCount int64 `json:"totalElementCount"`
	TotalPageCount    int64 `json:"totalPageCount"`
	HasNext           bool  `json:"hasNext"`
	HasPrevious       bool  `json:"hasPrevious"`
}

// Page is a generic paginated result envelope.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PageOf assembles a Page from the fetched items, the Pageable that produced
// them and the total number of matching elements.
func PageOf[T any](items []T, pageable Pageable, totalElements int64) Page[T] {
	var totalPages int64
	if totalElements > 0 {
		pageSize := int64(pageable.PageSize)
		totalPages = (totalElements + pageSize - 1) / pageSize
	}

	return Page[T]{
		Data: items,
		Pagination: Pagination{
			PageIndex:         pageable.PageIndex,
			PageSize:          pageable.PageSize,
			TotalElementCount: totalElements,
			TotalPageCount:    totalPages,
			HasNext:           int64(pageable.PageIndex)+1 < totalPages,
			HasPrevious:       pageable.PageIndex > FirstPage,
		},
	}
}

// MapPage converts the elements of a page, preserving the pagination
// metadata. Typical use is mapping entities to response DTOs.
func MapPage[T any, U any](page Page[T], mapFn func(T) U) Page[U] {
	return Page[U]{
		Data: lo.Map(page.Data, func(item T, _ int) U {
			return mapFn(item)
		}),
		Pagination: page.Pagination,
	}
}
