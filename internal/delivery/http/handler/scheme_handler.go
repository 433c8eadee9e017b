package handler

import (
	"errors"
	"net/http"

	"scheme-directory/internal/converter"
	"scheme-directory/internal/usecase"
	"scheme-directory/pkg/response"
)

const invalidPaginationMessage = "Invalid pagination parameters. Page and limit must be positive integers."

type SchemeHandler struct {
	schemeUsecase usecase.SchemeUsecase
}

func NewSchemeHandler(schemeUsecase usecase.SchemeUsecase) *SchemeHandler {
	return &SchemeHandler{
		schemeUsecase: schemeUsecase,
	}
}

// GetSchemes handles listing the whole directory
// @Summary List all schemes
// @Tags Schemes
// @Produce json
// @Success 200 {array} dto.SchemeResponse
// @Failure 500 {object} response.ErrorBody
// @Router /schemes [get]
func (h *SchemeHandler) GetSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.schemeUsecase.GetAllSchemes(r.Context())
	if err != nil {
		response.InternalServerError(w)
		return
	}

	response.JSON(w, http.StatusOK, schemes)
}

// DynamicSchemes handles filtered, paginated search
// @Summary Search schemes
// @Description Filter schemes by eligibility attributes. Unknown parameters are ignored.
// @Tags Schemes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.PaginatedSchemesResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /dynamicschemes [get]
func (h *SchemeHandler) DynamicSchemes(w http.ResponseWriter, r *http.Request) {
	req := converter.QueryToSearchRequest(r.URL.Query())

	result, err := h.schemeUsecase.SearchSchemes(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPagination):
			response.BadRequest(w, invalidPaginationMessage)
		default:
			response.InternalServerError(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}
