package pagekit

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// SortDirection defines the sort direction for the requested dataset.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction SortDirection
	}

	SortKey = string

	// ColumnMapping is the closed set of permitted sort keys for a model.
	// Key is an external sort key, value is an internal column name. Use
	// fully qualified column names when bare names could cause an
	// "ambiguous column name" error.
	ColumnMapping = map[SortKey]string
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	// Guard against SQL injection by restricting allowed characters in column names.
	if !lo.Every(_availableColumnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQLSlice converts Orderings to a slice of strings in the form
// "<order_column> <order_direction>" suitable for SQL query builders.
//
// Example: for Orderings: [{"a", "ASC"}, {"b", "DESC"}] returns ["a ASC", "b DESC"].
func (o Orderings) ToSQLSlice() []string {
	ret := make([]string, 0, len(o))
	for _, ordering := range o {
		ret = append(ret, fmt.Sprintf("%s %s", ordering.Column, ordering.Direction))
	}

	return ret
}

// ToSQL converts Orderings to a single string
// "<order_column_1> <order_direction_1>, <order_column_2> <order_direction_2>"
// suitable for embedding into an SQL query.
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM table ORDER BY %s", orderings.ToSQL())
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// Apply applies the ordering to a gorm query.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	var err error
	for _, ordering := range o {
		err = ordering.validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// UnknownSortByError reports a sort key that is not present in the permitted
// column mapping. It carries the offending value, the complete sorted list of
// accepted keys and the closest accepted key as a suggestion. It is a client
// input error, not a system fault.
type UnknownSortByError struct {
	Value    string
	Accepted []SortKey
	Closest  SortKey
}

func (e *UnknownSortByError) Error() string {
	msg := fmt.Sprintf(
		"unknown sort by value %q, expecting one of %s",
		e.Value, strings.Join(e.Accepted, ", "),
	)
	if e.Closest != "" {
		msg += fmt.Sprintf(". closest: '%s'", e.Closest)
	}

	return msg
}

// ResolveSortBy resolves an external sort key to a column name via
// ColumnMapping. Matching is case-sensitive: "first_name" does not resolve
// "FIRST_NAME". Returns *UnknownSortByError when the key is not found.
func ResolveSortBy(sortBy string, columnMapping ColumnMapping) (string, error) {
	columnName := columnMapping[sortBy]
	if columnName != "" {
		return columnName, nil
	}

	accepted := lo.Keys(columnMapping)
	slices.Sort(accepted)

	return "", &UnknownSortByError{
		Value:    sortBy,
		Accepted: accepted,
		Closest:  closestSortKey(sortBy, accepted),
	}
}

func closestSortKey(input SortKey, dataSet []SortKey) SortKey {
	minDist := math.MaxInt
	closest := ""

	for _, dataSetKey := range dataSet {
		dist := levenshtein([]rune(dataSetKey), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = dataSetKey
		}
	}

	return closest
}
