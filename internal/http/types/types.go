// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
)

// Response is the envelope for every successful JSON response.
type Response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

// ErrorResponse is the envelope for every error response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// StatusFromError maps the error taxonomy onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPrecondition):
		return http.StatusPreconditionFailed
	case errors.Is(err, errs.ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(Response{Data: data, Message: message, Status: status})
}

// WriteError renders err with the status derived from its class. Internal
// errors never leak their message.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFromError(err)

	resp := ErrorResponse{Status: status, Message: err.Error()}
	if status == http.StatusInternalServerError {
		resp.Message = http.StatusText(status)
	}

	var vErr *errs.ValidationError
	if errors.As(err, &vErr) {
		resp.Field = vErr.Field
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(resp)
}

// WriteStatus renders an error response with an explicit status.
func WriteStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorResponse{Status: status, Message: message})
}
