package repositories

// Sort directions accepted by list queries. Any other value falls back to the
// default ordering, newest created first.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// GroupAll is the sentinel group value meaning "do not filter by group".
const GroupAll = "all"

// ListQuery describes the optional search, group filter, and sort of a list
// request. The zero value selects every record in default order.
type ListQuery struct {
	Search string // case-insensitive substring match
	Group  string // exact group match; empty or GroupAll disables the filter
	Sort   string // SortAsc or SortDesc orders by name; anything else by creation time
}

// HasGroupFilter reports whether the query restricts results to one group.
func (q ListQuery) HasGroupFilter() bool {
	return q.Group != "" && q.Group != GroupAll
}

// SortsByName reports whether the query carries a valid explicit sort.
func (q ListQuery) SortsByName() bool {
	return q.Sort == SortAsc || q.Sort == SortDesc
}

// orderClause renders the ORDER BY expression for a query. Name ordering is
// case-insensitive with no secondary tie-break; the fallback is newest first.
func orderClause(q ListQuery) string {
	switch q.Sort {
	case SortAsc:
		return "LOWER(name) ASC"
	case SortDesc:
		return "LOWER(name) DESC"
	default:
		return "created_at DESC"
	}
}
