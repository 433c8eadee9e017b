package converter

import (
	"net/url"

	"scheme-directory/internal/delivery/dto"
	"scheme-directory/internal/domain/entity"
	"scheme-directory/internal/schemequery"
)

// QueryToSearchRequest picks the recognized filters and the pagination
// parameters out of a query string. Missing page/limit fall back to their
// defaults; a page or limit that is present but empty is kept as-is and
// rejected later.
func QueryToSearchRequest(query url.Values) *dto.SchemeSearchRequest {
	filter := entity.SchemeFilter{}
	for _, name := range schemequery.FieldNames() {
		if v := query.Get(name); v != "" {
			filter[name] = v
		}
	}

	req := &dto.SchemeSearchRequest{
		Filter: filter,
		Page:   schemequery.DefaultPage,
		Limit:  schemequery.DefaultLimit,
	}
	if query.Has("page") {
		req.Page = query.Get("page")
	}
	if query.Has("limit") {
		req.Limit = query.Get("limit")
	}
	return req
}

// SchemeToResponse converts a Scheme entity to SchemeResponse DTO
func SchemeToResponse(scheme *entity.Scheme) *dto.SchemeResponse {
	if scheme == nil {
		return nil
	}

	return &dto.SchemeResponse{
		SchemeID:           scheme.SchemeID,
		SchemeName:         scheme.SchemeName,
		Description:        scheme.Description,
		Benefits:           scheme.Benefits,
		Age:                scheme.Age,
		Gender:             scheme.Gender,
		Caste:              scheme.Caste,
		Occupation:         scheme.Occupation,
		Residence:          scheme.Residence,
		ApplicationMode:    nonNil(scheme.ApplicationMode),
		SchemeCategory:     nonNil(scheme.SchemeCategory),
		DifferentlyAbled:   scheme.DifferentlyAbled,
		BenefitType:        scheme.BenefitType,
		GovernmentEmployee: scheme.GovernmentEmployee,
		MaritalStatus:      scheme.MaritalStatus,
		Level:              scheme.Level,
		Minority:           scheme.Minority,
		EmploymentStatus:   scheme.EmploymentStatus,
	}
}

// SchemesToResponses converts a slice of Scheme entities to slice of SchemeResponse DTOs
func SchemesToResponses(schemes []entity.Scheme) []dto.SchemeResponse {
	responses := make([]dto.SchemeResponse, len(schemes))
	for i := range schemes {
		responses[i] = *SchemeToResponse(&schemes[i])
	}
	return responses
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
