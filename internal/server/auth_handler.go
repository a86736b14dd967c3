// Package server provides the HTTP REST API for the evaluation tracker.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/htaso/evaltracker/internal/config"
)

// AdminStore is the credential storage the auth handler needs.
type AdminStore interface {
	GetAdminHash(ctx context.Context) (string, error)
	SetAdminHash(ctx context.Context, hash string) error
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest is the admin password change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// AuthHandler handles admin authentication requests.
type AuthHandler struct {
	store      AdminStore
	pwConfig   *config.PasswordConfig
	jwtService *JWTService
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(store AdminStore, pwConfig *config.PasswordConfig, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		store:      store,
		pwConfig:   pwConfig,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// Login checks the admin password and issues a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	hash, err := h.store.GetAdminHash(r.Context())
	if err != nil {
		http.Error(w, "Failed to load credentials", http.StatusInternalServerError)
		return
	}
	if hash == "" || !h.pwConfig.VerifyPassword(req.Password, hash) {
		err := &ErrInvalidCredentials{}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	token, err := h.jwtService.GenerateToken()
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(LoginResponse{Token: token})
}

// ChangePassword verifies the current password and stores a new hash.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	if err := h.changePassword(r.Context(), &req); err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Password updated successfully"})
}

func (h *AuthHandler) changePassword(ctx context.Context, req *ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return &ErrValidation{Field: "confirm_password", Message: "passwords do not match"}
	}
	if len(req.NewPassword) < config.MinPasswordLength {
		return &ErrValidation{
			Field:   "new_password",
			Message: fmt.Sprintf("must be at least %d characters", config.MinPasswordLength),
		}
	}

	hash, err := h.store.GetAdminHash(ctx)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}
	if hash == "" || !h.pwConfig.VerifyPassword(req.CurrentPassword, hash) {
		return &ErrPasswordMismatch{}
	}

	newHash, err := h.pwConfig.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return h.store.SetAdminHash(ctx, newHash)
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
