package ports

// FilterOp identifies one comparison operator of the backend's filter grammar.
type FilterOp string

const (
	OpEq        FilterOp = "eq"
	OpNe        FilterOp = "ne"
	OpIn        FilterOp = "in"
	OpLt        FilterOp = "lt"
	OpLte       FilterOp = "lte"
	OpGt        FilterOp = "gt"
	OpGte       FilterOp = "gte"
	OpContainsI FilterOp = "containsi"
	OpNull      FilterOp = "null"
)

// Filter is one node of a filter tree: either a single condition on an
// attribute path, or a boolean combination of sub-filters. Exactly one of
// (Field+Op), Any, All is set. Building filters through the constructors
// below keeps malformed trees unrepresentable; free-form nested maps are
// deliberately not accepted anywhere.
type Filter struct {
	Field string // dotted attribute path, e.g. "business.id"
	Op    FilterOp
	Value any // scalar, or a slice for OpIn

	Any []Filter // logical OR of members
	All []Filter // logical AND of members
}

func Eq(field string, v any) Filter { return Filter{Field: field, Op: OpEq, Value: v} }

func Ne(field string, v any) Filter { return Filter{Field: field, Op: OpNe, Value: v} }

func Lt(field string, v any) Filter { return Filter{Field: field, Op: OpLt, Value: v} }

func Lte(field string, v any) Filter { return Filter{Field: field, Op: OpLte, Value: v} }

func Gt(field string, v any) Filter { return Filter{Field: field, Op: OpGt, Value: v} }

func Gte(field string, v any) Filter { return Filter{Field: field, Op: OpGte, Value: v} }

// ContainsI matches case-insensitive substring containment.
func ContainsI(field string, v any) Filter {
	return Filter{Field: field, Op: OpContainsI, Value: v}
}

// In matches any of the given values.
func In(field string, vs ...any) Filter {
	return Filter{Field: field, Op: OpIn, Value: vs}
}

// Null matches attributes that are (or are not) null.
func Null(field string, isNull bool) Filter {
	return Filter{Field: field, Op: OpNull, Value: isNull}
}

// Or combines filters so that any member may match.
func Or(fs ...Filter) Filter { return Filter{Any: fs} }

// And combines filters so that all members must match.
func And(fs ...Filter) Filter { return Filter{All: fs} }

// Pagination selects a result window, either page-based (Page/PageSize) or
// offset-based (Start/Limit). Zero fields are omitted from the request.
type Pagination struct {
	Page     int
	PageSize int
	Start    int
	Limit    int
}

// Populate directs relation expansion: everything, a list of relations, or
// nested expansion per relation.
type Populate struct {
	All       bool
	Relations []string
	Nested    map[string]Populate
}

// PopulateAll expands every first-level relation.
func PopulateAll() Populate { return Populate{All: true} }

// Query is the structured form of a read request: filters are combined as
// siblings (implicit AND), sort entries look like "order:asc".
type Query struct {
	Filters    []Filter
	Sort       []string
	Pagination *Pagination
	Populate   Populate
	Fields     []string
	Locale     string
}

// PageInfo is the pagination block of a list response envelope.
type PageInfo struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}
