package converter

import (
	"net/url"
	"testing"

	"scheme-directory/internal/domain/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryToSearchRequest(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFilter entity.SchemeFilter
		wantPage   string
		wantLimit  string
	}{
		{
			name:       "defaults",
			query:      "",
			wantFilter: entity.SchemeFilter{},
			wantPage:   "1",
			wantLimit:  "10",
		},
		{
			name:       "recognized filters only",
			query:      "gender=female&caste=&foo=bar&scheme_category=Health%2CEducation",
			wantFilter: entity.SchemeFilter{"gender": "female", "scheme_category": "Health,Education"},
			wantPage:   "1",
			wantLimit:  "10",
		},
		{
			name:       "explicit pagination",
			query:      "page=3&limit=25",
			wantFilter: entity.SchemeFilter{},
			wantPage:   "3",
			wantLimit:  "25",
		},
		{
			name:       "present but empty page is kept",
			query:      "page=&limit=5",
			wantFilter: entity.SchemeFilter{},
			wantPage:   "",
			wantLimit:  "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			req := QueryToSearchRequest(values)
			assert.Equal(t, tt.wantFilter, req.Filter)
			assert.Equal(t, tt.wantPage, req.Page)
			assert.Equal(t, tt.wantLimit, req.Limit)
		})
	}
}

func TestSchemeToResponse(t *testing.T) {
	desc := "Monthly pension"
	scheme := &entity.Scheme{
		SchemeID:        9,
		SchemeName:      "Old Age Pension",
		Description:     &desc,
		Age:             "60-150",
		Gender:          "all",
		ApplicationMode: pq.StringArray{"Offline"},
	}

	resp := SchemeToResponse(scheme)
	require.NotNil(t, resp)
	assert.Equal(t, 9, resp.SchemeID)
	assert.Equal(t, &desc, resp.Description)
	assert.Nil(t, resp.Benefits)
	assert.Equal(t, []string{"Offline"}, resp.ApplicationMode)
	assert.NotNil(t, resp.SchemeCategory)
	assert.Empty(t, resp.SchemeCategory)

	assert.Nil(t, SchemeToResponse(nil))
	assert.Empty(t, SchemesToResponses(nil))
}

func TestUserToResponse(t *testing.T) {
	email := "asha@example.com"
	resp := UserToResponse(&entity.User{UserID: 4, Username: "asha", Email: &email, Password: "hash"})

	require.NotNil(t, resp)
	assert.Equal(t, 4, resp.ID)
	assert.Equal(t, "asha", resp.Username)
	assert.Equal(t, &email, resp.Email)
	assert.Nil(t, UserToResponse(nil))
}
