package response

import (
	"encoding/json"
	"net/http"
)

const internalServerError = "Internal Server Error"

// ErrorBody is the payload of scheme endpoint failures.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the payload of auth endpoint replies.
type MessageBody struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageBody{Message: message})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, MessageBody{
		Message: "Validation failed",
		Errors:  errors,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Message(w, http.StatusUnauthorized, message)
}

// InternalServerError writes the generic 500 body. Details stay in the logs.
func InternalServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, internalServerError)
}

// InternalServerErrorMessage is the 500 reply of the auth endpoints.
func InternalServerErrorMessage(w http.ResponseWriter) {
	Message(w, http.StatusInternalServerError, internalServerError)
}
