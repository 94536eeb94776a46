package handlers

import (
	"log/slog"
	"net/http"

	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/utils"
)

// handleValidateQR handles POST /api/validate-qr. The endpoint is public and
// never leaks store details: a failed lookup is a 500 with a generic message,
// an unknown hash is a normal 200 with isValid=false.
func (s *APIServer) handleValidateQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.VerifyRequest
	if err := utils.ParseJSONRequest(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.verificationService.Verify(r.Context(), req.Hash)
	if err != nil {
		slog.Error("QR validation failed", "error", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, models.VerificationResult{
			IsValid: false,
			Message: "Database error occurred during validation",
		})
		return
	}

	status := http.StatusOK
	if req.Hash == "" {
		status = http.StatusBadRequest
	}
	utils.RespondWithJSON(w, status, result)
}
