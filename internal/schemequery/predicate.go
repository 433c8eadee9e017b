package schemequery

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// Outcome is the result of translating one filter parameter.
type Outcome int

const (
	// Unconstrained means the parameter was absent or held a sentinel; the
	// field places no restriction on the result.
	Unconstrained Outcome = iota
	// Constrained means a predicate must be added to the WHERE clause.
	Constrained
	// Malformed means the value could not be interpreted. The filter is
	// dropped and Reason says why.
	Malformed
)

// Predicate is one translated filter. Only Constrained predicates carry SQL;
// placeholders are assigned by the Builder that receives it.
type Predicate struct {
	Field   string
	Value   string
	Outcome Outcome
	Reason  string
	Args    []interface{}

	render func(placeholders []string) string
}

var ageRangePattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// BuildPredicate translates the raw value of field. An empty raw value is
// treated as an absent parameter.
func BuildPredicate(field Field, raw string) Predicate {
	p := Predicate{Field: field.Name, Value: raw}
	if raw == "" || field.isSentinel(raw) {
		p.Outcome = Unconstrained
		return p
	}

	switch field.Kind {
	case KindCategorical:
		return categorical(p)
	case KindAgeRange:
		return ageRange(p)
	case KindArrayMember:
		return arrayMember(p)
	case KindArrayOverlap:
		return arrayOverlap(p)
	default:
		return malformed(p, fmt.Sprintf("unsupported filter kind %s", field.Kind))
	}
}

func (f Field) isSentinel(raw string) bool {
	for _, s := range f.Sentinels {
		if strings.EqualFold(raw, s) {
			return true
		}
	}
	return false
}

func categorical(p Predicate) Predicate {
	column := p.Field
	p.Outcome = Constrained
	p.Args = []interface{}{p.Value}
	p.render = func(ph []string) string {
		return fmt.Sprintf("(LOWER(%s) = LOWER(%s) OR LOWER(%s) = 'all')", column, ph[0], column)
	}
	return p
}

// ageRange keeps rows whose stored range overlaps the requested one:
// row.min <= reqMax AND row.max >= reqMin.
func ageRange(p Predicate) Predicate {
	m := ageRangePattern.FindStringSubmatch(p.Value)
	if m == nil {
		return malformed(p, "invalid age range format, use min-max")
	}

	// Bounds are compared against INT (int4) columns.
	reqMin, err := strconv.ParseInt(m[1], 10, 32)
	if err != nil {
		return malformed(p, "age range lower bound out of range")
	}
	reqMax, err := strconv.ParseInt(m[2], 10, 32)
	if err != nil {
		return malformed(p, "age range upper bound out of range")
	}

	column := p.Field
	p.Outcome = Constrained
	p.Args = []interface{}{int(reqMax), int(reqMin)}
	p.render = func(ph []string) string {
		return fmt.Sprintf(
			"(CAST(SPLIT_PART(%s, '-', 1) AS INT) <= %s AND CAST(SPLIT_PART(%s, '-', 2) AS INT) >= %s)",
			column, ph[0], column, ph[1],
		)
	}
	return p
}

func arrayMember(p Predicate) Predicate {
	if strings.TrimSpace(p.Value) == "" {
		return malformed(p, "blank value")
	}

	column := p.Field
	p.Outcome = Constrained
	p.Args = []interface{}{p.Value}
	p.render = func(ph []string) string {
		return fmt.Sprintf("%s = ANY(%s)", ph[0], column)
	}
	return p
}

func arrayOverlap(p Predicate) Predicate {
	values, err := splitList(p.Value)
	if err != nil {
		return malformed(p, err.Error())
	}
	if len(values) == 0 {
		return malformed(p, "no values in list")
	}

	column := p.Field
	p.Outcome = Constrained
	p.Args = []interface{}{pq.Array(values)}
	p.render = func(ph []string) string {
		return fmt.Sprintf("%s && %s::text[]", column, ph[0])
	}
	return p
}

// splitList decodes a percent-encoded, comma-separated list and trims each
// entry. Empty entries are dropped.
func splitList(raw string) ([]string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return nil, fmt.Errorf("cannot decode list: %w", err)
	}

	parts := strings.Split(decoded, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	return values, nil
}

func malformed(p Predicate, reason string) Predicate {
	p.Outcome = Malformed
	p.Reason = reason
	p.Args = nil
	p.render = nil
	return p
}
