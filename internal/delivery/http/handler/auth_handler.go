package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"scheme-directory/internal/delivery/dto"
	"scheme-directory/internal/usecase"
	"scheme-directory/pkg/response"
	"scheme-directory/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Signup handles user registration
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup Request"
// @Success 201 {object} response.MessageBody
// @Failure 400 {object} response.MessageBody
// @Router /signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.authUsecase.Signup(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			response.Message(w, http.StatusBadRequest, "Username already taken")
		default:
			response.InternalServerErrorMessage(w)
		}
		return
	}

	response.Message(w, http.StatusCreated, "User registered successfully")
}

// Signin handles user login
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SigninRequest true "Signin Request"
// @Success 200 {object} dto.SigninResponse
// @Failure 401 {object} response.MessageBody
// @Router /signin [post]
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Signin(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid username or password")
		default:
			response.InternalServerErrorMessage(w)
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.SigninResponse{
		Message: "Login successful",
		User:    user,
	})
}
