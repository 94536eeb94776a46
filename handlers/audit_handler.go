package handlers

import (
	"log/slog"
	"net/http"

	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/utils"
)

// handleAuditLogs handles GET /api/audit-logs
func (s *APIServer) handleAuditLogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	logs, err := s.auditService.ListAll(r.Context())
	if err != nil {
		slog.Error("Failed to fetch audit logs", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.AuditLogsResponse{Logs: logs})
}

// handleAuditSummary handles GET /api/audit-summary
func (s *APIServer) handleAuditSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	summary, err := s.auditService.Summarize(r.Context(), 24)
	if err != nil {
		slog.Error("Failed to summarize audit logs", "error", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.AuditSummaryResponse{
		Message: "Audit summary for last 24 hours",
		Summary: summary,
	})
}
