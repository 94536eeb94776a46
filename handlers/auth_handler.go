package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/services"
	"github.com/haawaard/Barangay-Document-Checker/utils"
)

// handleLogin handles POST /api/login
func (s *APIServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.LoginRequest
	if err := utils.ParseJSONRequest(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and password are required")
		return
	}

	user, err := s.authService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("Login failed", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		User:    user,
	})
}
