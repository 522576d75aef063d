package pagekit

// Package pagekit augments GORM models with three loosely-coupled utilities:
//   - Entity: an embeddable base model carrying a time-ordered UUID identity
//     and an optimistic-concurrency version counter.
//   - Pageable: translation of a nullable web-style page request (index, size,
//     sortBy, sortDirection) into a clamped, validated LIMIT/OFFSET/ORDER BY
//     descriptor, plus a serializable Page envelope for results.
//   - Search: tag-driven discovery of searchable string columns and assembly
//     of a case-insensitive, wildcard-escaped, OR-combined LIKE predicate.
//
// Key concepts
//   - Entity / AuditedEntity: embed into your models.
//   - PageSpec / SearchSpec: request shapes as received at an API boundary.
//   - PageableOf: request -> descriptor translation with defaulting and
//     clamping; sort keys resolve against a closed ColumnMapping.
//   - SearchScope / SearchExpression: substring search over fields marked
//     with the `searchable` struct tag.
//   - Repository: ties the three together over a *gorm.DB.
//
// See README for examples and usage details.
