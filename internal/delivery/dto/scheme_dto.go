package dto

import "scheme-directory/internal/domain/entity"

// Request DTOs

// SchemeSearchRequest carries the raw query parameters of /dynamicschemes.
// Page and Limit are validated by the usecase.
type SchemeSearchRequest struct {
	Filter entity.SchemeFilter
	Page   string
	Limit  string
}

// Response DTOs

type SchemeResponse struct {
	SchemeID           int      `json:"scheme_id"`
	SchemeName         string   `json:"scheme_name"`
	Description        *string  `json:"description"`
	Benefits           *string  `json:"benefits"`
	Age                string   `json:"age"`
	Gender             string   `json:"gender"`
	Caste              string   `json:"caste"`
	Occupation         string   `json:"occupation"`
	Residence          string   `json:"residence"`
	ApplicationMode    []string `json:"application_mode"`
	SchemeCategory     []string `json:"scheme_category"`
	DifferentlyAbled   string   `json:"differently_abled"`
	BenefitType        string   `json:"benefit_type"`
	GovernmentEmployee string   `json:"government_employee"`
	MaritalStatus      string   `json:"marital_status"`
	Level              string   `json:"level"`
	Minority           string   `json:"minority"`
	EmploymentStatus   string   `json:"employment_status"`
}

type PaginatedSchemesResponse struct {
	CurrentPage  int              `json:"currentPage"`
	TotalPages   int              `json:"totalPages"`
	TotalItems   int64            `json:"totalItems"`
	ItemsPerPage int              `json:"itemsPerPage"`
	Schemes      []SchemeResponse `json:"schemes"`
}
