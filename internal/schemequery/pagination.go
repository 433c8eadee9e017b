package schemequery

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	DefaultPage  = "1"
	DefaultLimit = "10"

	minPage  = 1
	minLimit = 1
)

var ErrInvalidPagination = errors.New("invalid pagination parameters, page and limit must be positive integers")

// Pagination is a validated page request.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination validates the raw page and limit parameters. There is no
// upper bound on either value.
func ParsePagination(page, limit string) (Pagination, error) {
	pageNum, err := leadingInt(page)
	if err != nil || pageNum < minPage {
		return Pagination{}, ErrInvalidPagination
	}

	limitNum, err := leadingInt(limit)
	if err != nil || limitNum < minLimit {
		return Pagination{}, ErrInvalidPagination
	}

	// The offset must fit in an int.
	if pageNum-1 > math.MaxInt/limitNum {
		return Pagination{}, ErrInvalidPagination
	}

	return Pagination{
		Page:   pageNum,
		Limit:  limitNum,
		Offset: (pageNum - 1) * limitNum,
	}, nil
}

// TotalPages returns ceil(totalItems / limit), or 0 when there are no items.
func TotalPages(totalItems int64, limit int) int {
	if totalItems <= 0 || limit < minLimit {
		return 0
	}
	l := int64(limit)
	return int((totalItems + l - 1) / l)
}

// leadingInt reads the base-10 integer at the start of s after leading
// whitespace and an optional sign, ignoring whatever follows it. So "2abc"
// is 2, "5.0" is 5 and "1e3" is 1. It fails when no digit follows the sign.
func leadingInt(s string) (int, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s[:end])
}
