package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"unirent-backend/internal/domain"
	"unirent-backend/internal/logger"
	"unirent-backend/internal/security"
	"unirent-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondServiceError maps service errors onto HTTP statuses. Validation and
// not-found errors carry their message through; external-dependency failures
// get a generic retry-later message so internal detail never leaks.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrItemUnavailable):
		respondError(w, http.StatusConflict, "This item is currently unavailable.")
	case errors.Is(err, domain.ErrEmailTaken):
		respondError(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrNotBookingOwner):
		respondError(w, http.StatusForbidden, "You do not have access to this booking")
	case errors.Is(err, service.ErrPaymentFailed):
		logger.Error("payment initiation failed", "error", err)
		respondError(w, http.StatusBadGateway, "Payment initiation failed. Please try again.")
	case errors.Is(err, service.ErrBookingCreation):
		respondError(w, http.StatusBadRequest, "Failed to create booking")
	case errors.Is(err, security.ErrExpiredToken):
		respondError(w, http.StatusUnauthorized, "Reset link has expired")
	case errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrWrongTokenType):
		respondError(w, http.StatusUnauthorized, "Invalid reset link")
	default:
		logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}
}
