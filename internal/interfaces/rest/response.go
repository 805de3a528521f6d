package rest

import (
	"encoding/json"
	"net/http"

	"github.com/iByteABit256/MRN-Generator/internal/domain"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

// WriteError maps domain errors to HTTP responses. Invalid fields and
// counts are the caller's fault; an invalid payload means the composer
// broke its own invariant and surfaces as an internal error.
func WriteError(w http.ResponseWriter, err error) {
	code := "INTERNAL_ERROR"
	message := err.Error()
	status := http.StatusInternalServerError

	if domainErr, ok := domain.IsDomainError(err); ok {
		code = domainErr.Code
		message = domainErr.Message

		switch domainErr.Code {
		case domain.ErrCodeInvalidField, domain.ErrCodeInvalidCount:
			status = http.StatusBadRequest
		case domain.ErrCodeInvalidPayload:
			status = http.StatusInternalServerError
		}
	}

	WriteJSON(w, status, &APIError{Code: code, Message: message})
}
