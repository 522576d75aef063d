package pagekit

// PageSpec is the pagination request shape as received at an API boundary.
// Every field is optional; absence triggers the documented defaults of
// PageableOf. For proper decoding, inline it:
//
//	type ListUsersRequest struct {
//	    PageSpec `json:",inline"`
//	}
type PageSpec struct {
	// PageIndex - zero-based page number. Defaults to FirstPage.
	PageIndex *int `json:"pageIndex,omitempty"`
	// PageSize - number of records per page. Defaults to the configured
	// default size; always clamped to [MinPageSize, max].
	PageSize *int `json:"pageSize,omitempty"`
	// SortBy - external sort key resolved case-sensitively against a
	// ColumnMapping. Absent means unsorted.
	SortBy *string `json:"sortBy,omitempty"`
	// SortDirection - ASC or DESC. Defaults to ASC when SortBy is present,
	// never applied otherwise.
	SortDirection *SortDirection `json:"sortDirection,omitempty"`
}

// SearchSpec extends PageSpec with an optional substring search term.
type SearchSpec struct {
	PageSpec `json:",inline"`

	// SearchTerm - substring matched case-insensitively against every
	// searchable field. Absent or blank means no filtering.
	SearchTerm *string `json:"searchTerm,omitempty"`
}

// Term returns the search term or "" when absent.
func (s *SearchSpec) Term() string {
	if s == nil || s.SearchTerm == nil {
		return ""
	}

	return *s.SearchTerm
}
