package http

import (
	"encoding/json"
	"net/http"

	"unirent-backend/internal/logger"
	"unirent-backend/internal/service"
)

// AuthHandler serves registration, login and password-reset routes
type AuthHandler struct {
	userSvc service.UserService
}

func NewAuthHandler(userSvc service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

type registerRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	IDNumber      string `json:"id_number"`
	Password      string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userSvc.Register(r.Context(), req.FullName, req.Email, req.ContactNumber, req.IDNumber, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token         string `json:"token"`
	UserID        string `json:"user_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.userSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{
		Token:         token,
		UserID:        user.ID.Hex(),
		FullName:      user.FullName,
		Email:         user.Email,
		ContactNumber: user.ContactNumber,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; the client discards its copy.
	respondJSON(w, http.StatusOK, messageResponse{Message: "Logout successful"})
}

type resetRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset always reports the same message regardless of whether
// the email is registered, to prevent account enumeration. Delivery failures
// are logged but hidden from the caller for the same reason.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.userSvc.RequestPasswordReset(r.Context(), req.Email); err != nil {
		logger.Error("password reset request failed", "error", err)
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "If this email exists, a reset link has been sent"})
}

type newPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req newPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token == "" {
		req.Token = r.URL.Query().Get("token")
	}

	if err := h.userSvc.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Password updated successfully"})
}
