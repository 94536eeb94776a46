package handlers

import (
	"log/slog"
	"net/http"

	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/utils"
)

const (
	recentDocumentsLimit = 10
	recentIssuanceLimit  = 10
	fraudMonitorLimit    = 20
)

// handleTotalDocuments handles GET /api/dashboard/total-documents
func (s *APIServer) handleTotalDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	total, err := s.dashboardService.TotalIssued(r.Context())
	if err != nil {
		slog.Error("Failed to count issued documents", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.TotalDocumentsResponse{Total: total})
}

// handleValidDocuments handles GET /api/dashboard/valid-documents
func (s *APIServer) handleValidDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	count, err := s.dashboardService.ValidScans(r.Context())
	if err != nil {
		slog.Error("Failed to count valid scans", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.ScanCountResponse{Count: count})
}

// handleInvalidDocuments handles GET /api/dashboard/invalid-documents
func (s *APIServer) handleInvalidDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	count, err := s.dashboardService.InvalidScans(r.Context())
	if err != nil {
		slog.Error("Failed to count invalid scans", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.ScanCountResponse{Count: count})
}

// handleRecentAuditIssuance handles GET /api/dashboard/recent-audit-issuance
func (s *APIServer) handleRecentAuditIssuance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	recent, err := s.dashboardService.RecentIssuances(r.Context(), recentIssuanceLimit)
	if err != nil {
		slog.Error("Failed to fetch recent issuances", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.RecentIssuanceResponse{Recent: recent})
}

// handleFraudMonitor handles GET /api/dashboard/fraud-monitor
func (s *APIServer) handleFraudMonitor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	attempts, err := s.dashboardService.FraudMonitor(r.Context(), fraudMonitorLimit)
	if err != nil {
		slog.Error("Failed to fetch fraud monitor entries", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.FraudMonitorResponse{FraudAttempts: attempts})
}

// handleRecentDocuments handles GET /api/recent-issuance, the merged
// newest-first listing across all three document tables.
func (s *APIServer) handleRecentDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	recent, err := s.dashboardService.RecentDocuments(r.Context(), recentDocumentsLimit)
	if err != nil {
		slog.Error("Failed to fetch recent documents", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.RecentDocumentsResponse{Recent: recent})
}
