package pagekit

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository provides paginated, searchable access to a single model type.
// It composes SearchScope and Pageable at the call site; the components stay
// independent of each other.
type Repository[T any] struct {
	db             *gorm.DB
	columnMapping  ColumnMapping
	pagingDefaults []PageableOption
}

// NewRepository builds a Repository for model T. columnMapping is the closed
// set of permitted sort keys; pass nil for unsorted use. pagingDefaults apply
// to every translated PageSpec.
func NewRepository[T any](db *gorm.DB, columnMapping ColumnMapping, pagingDefaults ...PageableOption) *Repository[T] {
	return &Repository[T]{
		db:             db,
		columnMapping:  columnMapping,
		pagingDefaults: pagingDefaults,
	}
}

// Search returns one page of records whose searchable fields contain term.
// A blank term matches every record.
func (r *Repository[T]) Search(ctx context.Context, term string, pageable Pageable) (Page[T], error) {
	return r.page(ctx, pageable, SearchScope(new(T), term))
}

// SearchSpec translates spec into a Pageable and delegates to Search. This is
// the one-call path from an API boundary request to a Page response.
func (r *Repository[T]) SearchSpec(ctx context.Context, spec *SearchSpec) (Page[T], error) {
	var pageSpec *PageSpec
	if spec != nil {
		pageSpec = &spec.PageSpec
	}

	pageable, err := PageableOf(pageSpec, r.columnMapping, r.pagingDefaults...)
	if err != nil {
		return Page[T]{}, err
	}

	return r.Search(ctx, spec.Term(), pageable)
}

// FindPage returns one page of records without any search filtering.
func (r *Repository[T]) FindPage(ctx context.Context, pageable Pageable) (Page[T], error) {
	return r.page(ctx, pageable, nil)
}

func (r *Repository[T]) page(ctx context.Context, pageable Pageable, scope func(*gorm.DB) *gorm.DB) (Page[T], error) {
	query := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(new(T))
		if scope != nil {
			db = db.Scopes(scope)
		}

		return db
	}

	var totalElements int64
	err := query().Count(&totalElements).Error
	if err != nil {
		return Page[T]{}, fmt.Errorf("cannot count records: %w", err)
	}

	paged, err := pageable.Apply(query())
	if err != nil {
		return Page[T]{}, err
	}

	var items []T
	err = paged.Find(&items).Error
	if err != nil {
		return Page[T]{}, fmt.Errorf("cannot fetch page: %w", err)
	}

	return PageOf(items, pageable, totalElements), nil
}
