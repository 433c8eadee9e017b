package schemequery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		limit    string
		expected Pagination
	}{
		{name: "defaults", page: DefaultPage, limit: DefaultLimit, expected: Pagination{Page: 1, Limit: 10, Offset: 0}},
		{name: "second page", page: "2", limit: "5", expected: Pagination{Page: 2, Limit: 5, Offset: 5}},
		{name: "large page", page: "1000", limit: "25", expected: Pagination{Page: 1000, Limit: 25, Offset: 24975}},
		{name: "leading zeros", page: "03", limit: "010", expected: Pagination{Page: 3, Limit: 10, Offset: 20}},
		{name: "trailing garbage", page: "2abc", limit: "10", expected: Pagination{Page: 2, Limit: 10, Offset: 10}},
		{name: "decimal limit", page: "1", limit: "5.0", expected: Pagination{Page: 1, Limit: 5, Offset: 0}},
		{name: "truncated decimal", page: "1", limit: "2.5", expected: Pagination{Page: 1, Limit: 2, Offset: 0}},
		{name: "leading whitespace", page: " 3", limit: "\t10", expected: Pagination{Page: 3, Limit: 10, Offset: 20}},
		{name: "exponent is not read", page: "1e3", limit: "10", expected: Pagination{Page: 1, Limit: 10, Offset: 0}},
		{name: "explicit plus sign", page: "+2", limit: "10", expected: Pagination{Page: 2, Limit: 10, Offset: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePagination(tt.page, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
			assert.Equal(t, (p.Page-1)*p.Limit, p.Offset)
		})
	}
}

func TestParsePagination_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		limit string
	}{
		{name: "zero page", page: "0", limit: "10"},
		{name: "zero limit", page: "1", limit: "0"},
		{name: "negative page", page: "-1", limit: "10"},
		{name: "negative limit", page: "1", limit: "-10"},
		{name: "non numeric page", page: "abc", limit: "10"},
		{name: "non numeric limit", page: "1", limit: "ten"},
		{name: "empty page", page: "", limit: "10"},
		{name: "no leading digits", page: "a2", limit: "10"},
		{name: "sign without digits", page: "-", limit: "10"},
		{name: "whitespace only", page: "   ", limit: "10"},
		{name: "hex prefix reads as zero", page: "0x10", limit: "10"},
		{name: "negative with suffix", page: "-3abc", limit: "10"},
		{name: "offset overflow", page: "9223372036854775807", limit: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePagination(tt.page, tt.limit)
			assert.ErrorIs(t, err, ErrInvalidPagination)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		totalItems int64
		limit      int
		expected   int
	}{
		{totalItems: 0, limit: 10, expected: 0},
		{totalItems: 1, limit: 10, expected: 1},
		{totalItems: 10, limit: 10, expected: 1},
		{totalItems: 11, limit: 10, expected: 2},
		{totalItems: 7, limit: 5, expected: 2},
		{totalItems: 12, limit: 1, expected: 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TotalPages(tt.totalItems, tt.limit), "total=%d limit=%d", tt.totalItems, tt.limit)
	}
}
