// Package schemequery turns the raw filter parameters of a scheme search into
// a parameterized count statement and a paginated data statement.
package schemequery

import "scheme-directory/internal/domain/entity"

// Kind selects how a filter value is translated into a predicate.
type Kind int

const (
	// KindCategorical matches a single-valued column case-insensitively; rows
	// holding the wildcard value match every request.
	KindCategorical Kind = iota
	// KindAgeRange tests a requested "min-max" range for overlap with the
	// row's own hyphen-encoded range.
	KindAgeRange
	// KindArrayMember tests that the requested value is an element of the
	// row's array column.
	KindArrayMember
	// KindArrayOverlap tests that the row's array column shares at least one
	// element with a comma-separated list of requested values.
	KindArrayOverlap
)

func (k Kind) String() string {
	switch k {
	case KindCategorical:
		return "categorical"
	case KindAgeRange:
		return "age_range"
	case KindArrayMember:
		return "array_member"
	case KindArrayOverlap:
		return "array_overlap"
	default:
		return "unknown"
	}
}

// Field describes one recognized filter parameter. Name doubles as the
// column name in the schemes table.
type Field struct {
	Name      string
	Kind      Kind
	Sentinels []string
}

var wildcard = []string{entity.WildcardValue}

// Fields lists every recognized filter in the order predicates are emitted.
var Fields = []Field{
	{Name: "age", Kind: KindAgeRange},
	{Name: "gender", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "caste", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "occupation", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "residence", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "application_mode", Kind: KindArrayMember, Sentinels: []string{entity.WildcardValue, "common"}},
	{Name: "differently_abled", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "benefit_type", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "government_employee", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "marital_status", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "level", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "minority", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "employment_status", Kind: KindCategorical, Sentinels: wildcard},
	{Name: "scheme_category", Kind: KindArrayOverlap, Sentinels: wildcard},
}

// FieldNames returns the names of all recognized filters in emission order.
func FieldNames() []string {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = f.Name
	}
	return names
}
