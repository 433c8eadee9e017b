package schemequery

import (
	"fmt"
	"strings"
)

const baseCondition = "1=1"

// Builder accumulates predicates into one WHERE clause. It owns the fragment
// list, the bind list and the next positional placeholder, so numbering stays
// sequential no matter how many binds each predicate contributes.
type Builder struct {
	fragments []string
	args      []interface{}
	next      int
	skipped   []Predicate
}

func NewBuilder() *Builder {
	return &Builder{next: 1}
}

// Add appends a Constrained predicate and records a Malformed one.
// Unconstrained predicates are ignored.
func (b *Builder) Add(p Predicate) {
	switch p.Outcome {
	case Constrained:
		placeholders := make([]string, len(p.Args))
		for i := range p.Args {
			placeholders[i] = b.placeholder()
		}
		b.fragments = append(b.fragments, p.render(placeholders))
		b.args = append(b.args, p.Args...)
	case Malformed:
		b.skipped = append(b.skipped, p)
	}
}

func (b *Builder) placeholder() string {
	ph := fmt.Sprintf("$%d", b.next)
	b.next++
	return ph
}

// Build freezes the accumulated state. Later calls to Add do not affect the
// returned Clause.
func (b *Builder) Build() Clause {
	conditions := make([]string, 0, len(b.fragments)+1)
	conditions = append(conditions, baseCondition)
	conditions = append(conditions, b.fragments...)

	return Clause{
		where:   "WHERE " + strings.Join(conditions, " AND "),
		args:    append([]interface{}{}, b.args...),
		next:    b.next,
		skipped: append([]Predicate{}, b.skipped...),
	}
}

// Clause is an immutable WHERE clause with its bind values.
type Clause struct {
	where   string
	args    []interface{}
	next    int
	skipped []Predicate
}

// Where returns the clause text, starting with "WHERE 1=1".
func (c Clause) Where() string {
	return c.where
}

// Args returns a copy of the bind values in placeholder order.
func (c Clause) Args() []interface{} {
	return append([]interface{}{}, c.args...)
}

// NextPlaceholder is the number of the first placeholder not used by the clause.
func (c Clause) NextPlaceholder() int {
	return c.next
}

// Skipped returns the malformed predicates that were dropped.
func (c Clause) Skipped() []Predicate {
	return append([]Predicate{}, c.skipped...)
}
