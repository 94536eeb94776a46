package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/services"
	"github.com/haawaard/Barangay-Document-Checker/utils"
)

// handleIndigency handles POST /api/indigency
func (s *APIServer) handleIndigency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.CertificateRequest
	if err := utils.ParseJSONRequest(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.issuanceService.SubmitIndigency(r.Context(), &req)
	if err != nil {
		respondSubmissionError(w, r, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.SubmissionResponse{
		Message: "Certificate of Indigency form submitted successfully",
		ID:      result.ID,
		Hash:    result.Hash,
	})
}

// handleClearance handles POST /api/clearance
func (s *APIServer) handleClearance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.CertificateRequest
	if err := utils.ParseJSONRequest(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.issuanceService.SubmitClearance(r.Context(), &req)
	if err != nil {
		respondSubmissionError(w, r, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.SubmissionResponse{
		Message: "Form submitted successfully",
		ID:      result.ID,
		Hash:    result.Hash,
	})
}

// handleBusinessPermit handles POST /api/businesspermit
func (s *APIServer) handleBusinessPermit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.BusinessPermitRequest
	if err := utils.ParseJSONRequest(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.issuanceService.SubmitBusinessPermit(r.Context(), &req)
	if err != nil {
		respondSubmissionError(w, r, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.SubmissionResponse{
		Message: "Business Permit form submitted successfully",
		ID:      result.ID,
		Hash:    result.Hash,
	})
}

// respondSubmissionError maps issuance service errors to HTTP statuses:
// validation failures are 400 with the validation message, everything else
// is a generic 500.
func respondSubmissionError(w http.ResponseWriter, r *http.Request, err error) {
	if services.IsValidationError(err) {
		utils.RespondWithError(w, http.StatusBadRequest, capitalizeMessage(err.Error()))
		return
	}
	slog.Error("Document submission failed", "path", r.URL.Path, "error", err)
	utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
}

func capitalizeMessage(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
