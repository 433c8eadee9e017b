package schemequery

import (
	"fmt"

	"scheme-directory/internal/domain/entity"
)

// SchemeColumns is the select list of every scheme statement. Repositories
// scan rows in this order.
const SchemeColumns = "scheme_id, scheme_name, description, benefits, age, gender, caste, occupation, residence, " +
	"application_mode, scheme_category, differently_abled, benefit_type, government_employee, marital_status, " +
	"level, minority, employment_status"

const (
	countPrefix = "SELECT COUNT(*) FROM schemes "
	dataPrefix  = "SELECT " + SchemeColumns + " FROM schemes "

	// ListAllSQL selects the whole directory.
	ListAllSQL = dataPrefix + "ORDER BY scheme_id ASC"
)

// QueryPair holds the count and data statements of one search. DataArgs is
// always CountArgs followed by limit and offset.
type QueryPair struct {
	CountSQL  string
	CountArgs []interface{}
	DataSQL   string
	DataArgs  []interface{}

	// Skipped lists filters that were dropped because their value was malformed.
	Skipped []Predicate
}

// BuildClause folds every recognized filter through BuildPredicate.
func BuildClause(filter entity.SchemeFilter) Clause {
	b := NewBuilder()
	for _, field := range Fields {
		raw, _ := filter.Lookup(field.Name)
		b.Add(BuildPredicate(field, raw))
	}
	return b.Build()
}

// Assemble builds the count and data statements for filter and page. Both
// statements share the same filter clause; only the data statement is ordered
// and paginated.
func Assemble(filter entity.SchemeFilter, page Pagination) QueryPair {
	clause := BuildClause(filter)

	limitPH := clause.NextPlaceholder()
	dataSQL := fmt.Sprintf("%s%s ORDER BY scheme_id ASC LIMIT $%d OFFSET $%d", dataPrefix, clause.Where(), limitPH, limitPH+1)

	return QueryPair{
		CountSQL:  countPrefix + clause.Where(),
		CountArgs: clause.Args(),
		DataSQL:   dataSQL,
		DataArgs:  append(clause.Args(), page.Limit, page.Offset),
		Skipped:   clause.Skipped(),
	}
}
