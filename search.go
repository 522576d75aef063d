package pagekit

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// SearchableTag is the struct tag key marking a string field for inclusion in
// substring search. Presence alone enables the field:
//
//	type Person struct {
//	    pagekit.Entity
//	    FirstName string `searchable:"true"`
//	    LastName  string `searchable:"true"`
//	    Notes     string // not searchable
//	}
const SearchableTag = "searchable"

// likeEscapeChar escapes literal wildcards inside LIKE patterns. Passed as a
// bind parameter so both mysql and postgres receive it unmangled.
const likeEscapeChar = `\`

var (
	// _searchableColumnsCache maps a model type to its searchable column
	// names for the life of the process. Model tags cannot change at
	// runtime, so the cache is never invalidated.
	_searchableColumnsCache sync.Map // reflect.Type -> []string

	_schemaStore = new(sync.Map)
)

// SearchExpression builds the search predicate for model: a case-insensitive
// LIKE over every searchable column, OR-combined. A nil expression is
// returned when term is blank or the model declares no searchable fields -
// the query then matches everything. A nil model fails fast.
func SearchExpression(model any, namer schema.Namer, term string) (clause.Expression, error) {
	if model == nil {
		return nil, fmt.Errorf("search model is nil")
	}

	columns, err := searchableColumns(model, namer)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(term) == "" || len(columns) == 0 {
		return nil, nil
	}

	pattern := searchPattern(term)
	likes := make([]clause.Expression, 0, len(columns))
	for _, column := range columns {
		likes = append(likes, clause.Expr{
			SQL:  fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE ?", column),
			Vars: []any{pattern, likeEscapeChar},
		})
	}

	if len(likes) == 1 {
		return likes[0], nil
	}

	return clause.Or(likes...), nil
}

// SearchScope returns a gorm scope restricting the query to records whose
// searchable fields contain term. Blank terms and models without searchable
// fields leave the query unrestricted.
//
// Usage:
//
//	db.Scopes(pagekit.SearchScope(&Person{}, "moe")).Find(&people)
func SearchScope(model any, term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		expression, err := SearchExpression(model, db.NamingStrategy, term)
		if err != nil {
			_ = db.AddError(fmt.Errorf("search scope: %w", err))
			return db
		}

		if expression == nil {
			return db
		}

		return db.Where(expression)
	}
}

// searchableColumns discovers the searchable column names of a model through
// the GORM schema metamodel, caching the result per concrete type. Concurrent
// first-time callers may race on the computation; LoadOrStore keeps the cache
// consistent and recomputing is harmless.
func searchableColumns(model any, namer schema.Namer) ([]string, error) {
	modelType := indirectType(reflect.TypeOf(model))
	if cached, ok := _searchableColumnsCache.Load(modelType); ok {
		return cached.([]string), nil
	}

	if namer == nil {
		namer = schema.NamingStrategy{}
	}

	sch, err := schema.Parse(model, _schemaStore, namer)
	if err != nil {
		return nil, fmt.Errorf("cannot parse model schema: %w", err)
	}

	columns := make([]string, 0, len(sch.Fields))
	for _, field := range sch.Fields {
		if field.FieldType.Kind() != reflect.String {
			continue
		}
		if _, ok := field.Tag.Lookup(SearchableTag); !ok {
			continue
		}

		columns = append(columns, field.DBName)
	}

	if len(columns) == 0 {
		log.Warn().Str("model", sch.Name).Msg("no searchable fields declared; search is a no-op filter")
	}

	actual, _ := _searchableColumnsCache.LoadOrStore(modelType, columns)

	return actual.([]string), nil
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// searchPattern wraps the sanitized, lowercased term with wildcards on both
// ends.
func searchPattern(term string) string {
	return "%" + strings.ToLower(sanitizeSearchTerm(term)) + "%"
}

// sanitizeSearchTerm escapes literal LIKE wildcards in user input. Backslash
// goes first so already-escaped characters are not escaped twice.
func sanitizeSearchTerm(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	term = strings.ReplaceAll(term, `_`, `\_`)

	return term
}
