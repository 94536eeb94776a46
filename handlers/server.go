// Package handlers wires the portal's HTTP routes to the service layer.
package handlers

import (
	"net/http"

	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/services"
	"github.com/haawaard/Barangay-Document-Checker/utils"
)

// APIServer manages all API routes and handlers
type APIServer struct {
	issuanceService     *services.IssuanceService
	verificationService *services.VerificationService
	auditService        *services.AuditService
	dashboardService    *services.DashboardService
	authService         *services.AuthService
}

// NewAPIServer creates a new API server instance on top of the repositories.
// The publisher mirrors audit entries onto the event stream and may be nil.
func NewAPIServer(docs database.DocumentRepository, auditRepo database.AuditRepository, users database.UserRepository, publisher services.EventPublisher) *APIServer {
	auditService := services.NewAuditServiceWithPublisher(auditRepo, publisher)

	return &APIServer{
		issuanceService:     services.NewIssuanceService(docs, auditService),
		verificationService: services.NewVerificationService(docs, auditService),
		auditService:        auditService,
		dashboardService:    services.NewDashboardService(docs, auditRepo),
		authService:         services.NewAuthService(users, auditService),
	}
}

// SetupRoutes configures all API routes
func (s *APIServer) SetupRoutes(mux *http.ServeMux) {
	// Issuance routes
	mux.Handle("/api/indigency", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleIndigency)))
	mux.Handle("/api/clearance", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleClearance)))
	mux.Handle("/api/businesspermit", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleBusinessPermit)))

	// Public verification route
	mux.Handle("/api/validate-qr", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleValidateQR)))

	// Audit log routes
	mux.Handle("/api/audit-logs", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleAuditLogs)))
	mux.Handle("/api/audit-summary", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleAuditSummary)))

	// Login route
	mux.Handle("/api/login", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleLogin)))

	// Dashboard routes
	mux.Handle("/api/recent-issuance", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleRecentDocuments)))
	mux.Handle("/api/dashboard/total-documents", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleTotalDocuments)))
	mux.Handle("/api/dashboard/valid-documents", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleValidDocuments)))
	mux.Handle("/api/dashboard/invalid-documents", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleInvalidDocuments)))
	mux.Handle("/api/dashboard/recent-audit-issuance", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleRecentAuditIssuance)))
	mux.Handle("/api/dashboard/fraud-monitor", utils.PanicRecoveryMiddleware(http.HandlerFunc(s.handleFraudMonitor)))
}
