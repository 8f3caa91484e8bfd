package handler

import (
	"errors"
	"net/http"

	"github.com/tasklight/todo-api/internal/auth"
	"github.com/tasklight/todo-api/internal/domain"
	"github.com/tasklight/todo-api/internal/service"
	"go.uber.org/zap"
)

// ProfileHandler handles profile reads and updates for the authenticated user
type ProfileHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(authService *service.AuthService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		authService: authService,
		logger:      logger,
	}
}

// Get returns the authenticated user's profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.authService.GetProfile(r.Context(), userCtx.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("failed to get profile", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Update replaces name and email, and the password when one is supplied
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req domain.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	err := h.authService.UpdateProfile(r.Context(), userCtx.UserID, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			respondWithError(w, http.StatusConflict, "Email already registered")
			return
		}
		h.logger.Error("failed to update profile", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	respondJSON(w, http.StatusOK, domain.MessageResponse{Message: "Profile updated successfully"})
}
