package services

import (
	"context"
	"sort"

	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/models"
)

// DashboardService aggregates read-only counts and recent activity from the
// document store and the audit log. It never writes.
type DashboardService struct {
	docs  database.DocumentRepository
	audit database.AuditRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(docs database.DocumentRepository, audit database.AuditRepository) *DashboardService {
	return &DashboardService{docs: docs, audit: audit}
}

// TotalIssued returns the sum of row counts across the three document tables
func (s *DashboardService) TotalIssued(ctx context.Context) (int64, error) {
	indigency, err := s.docs.CountIndigency(ctx)
	if err != nil {
		return 0, err
	}
	clearance, err := s.docs.CountClearance(ctx)
	if err != nil {
		return 0, err
	}
	permits, err := s.docs.CountBusinessPermit(ctx)
	if err != nil {
		return 0, err
	}
	return indigency + clearance + permits, nil
}

// ValidScans counts successful QR verification attempts
func (s *DashboardService) ValidScans(ctx context.Context) (int64, error) {
	return s.audit.CountLogEntries(ctx, models.ActionQRVerification, models.StatusSuccess)
}

// InvalidScans counts failed QR verification attempts
func (s *DashboardService) InvalidScans(ctx context.Context) (int64, error) {
	return s.audit.CountLogEntries(ctx, models.ActionQRVerification, models.StatusFailed)
}

// RecentIssuances lists the latest issuance events from the audit log,
// newest first
func (s *DashboardService) RecentIssuances(ctx context.Context, limit int) ([]models.RecentIssuanceEntry, error) {
	action := models.ActionDocumentIssuance
	entries, err := s.audit.ListLogEntries(ctx, &database.AuditFilters{
		ActionType: &action,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	recent := make([]models.RecentIssuanceEntry, 0, len(entries))
	for _, e := range entries {
		docType := "Unknown Document"
		if e.DocumentType != nil && *e.DocumentType != "" {
			docType = *e.DocumentType
		}
		recent = append(recent, models.RecentIssuanceEntry{
			DocumentType: docType,
			DateIssued:   e.Timestamp.Format("2006-01-02"),
		})
	}
	return recent, nil
}

// FraudMonitor lists recent QR verification attempts annotated Valid/Invalid.
// This is a presentation filter over the audit log: there is no separate
// suspicious-activity detection.
func (s *DashboardService) FraudMonitor(ctx context.Context, limit int) ([]models.FraudMonitorEntry, error) {
	action := models.ActionQRVerification
	entries, err := s.audit.ListLogEntries(ctx, &database.AuditFilters{
		ActionType: &action,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	attempts := make([]models.FraudMonitorEntry, 0, len(entries))
	for _, e := range entries {
		docType := "Unknown Document"
		if e.DocumentType != nil && *e.DocumentType != "" {
			docType = *e.DocumentType
		}
		status := "Invalid QR"
		if e.Status == models.StatusSuccess {
			status = "Valid QR"
		}
		attempts = append(attempts, models.FraudMonitorEntry{
			DocumentType:  docType,
			CheckerMethod: "Scanned QR",
			DateIssued:    e.Timestamp.Format("2006-01-02"),
			Time:          e.Timestamp.Format("3:04 PM"),
			Status:        status,
		})
	}
	return attempts, nil
}

// RecentDocuments merges the newest rows across the three document tables
// into one feed, newest issue date first
func (s *DashboardService) RecentDocuments(ctx context.Context, limit int) ([]models.RecentDocumentEntry, error) {
	indigency, err := s.docs.RecentIndigency(ctx, limit)
	if err != nil {
		return nil, err
	}
	clearance, err := s.docs.RecentClearance(ctx, limit)
	if err != nil {
		return nil, err
	}
	permits, err := s.docs.RecentBusinessPermit(ctx, limit)
	if err != nil {
		return nil, err
	}

	merged := make([]models.RecentDocumentEntry, 0, len(indigency)+len(clearance)+len(permits))
	for _, d := range indigency {
		merged = append(merged, models.RecentDocumentEntry{
			Type: "indigency", LastName: d.LastName, FirstName: d.FirstName,
			MiddleName: d.MiddleName, Address: d.Address, Purpose: d.Purpose,
			IssuedOn: d.IssuedOn,
		})
	}
	for _, d := range clearance {
		merged = append(merged, models.RecentDocumentEntry{
			Type: "clearance", LastName: d.LastName, FirstName: d.FirstName,
			MiddleName: d.MiddleName, Address: d.Address, Purpose: d.Purpose,
			IssuedOn: d.IssuedOn,
		})
	}
	for _, d := range permits {
		merged = append(merged, models.RecentDocumentEntry{
			Type: "businesspermit", LastName: d.LastName, FirstName: d.FirstName,
			MiddleName: d.MiddleName, Address: d.Address, Purpose: d.BusinessNature,
			IssuedOn: d.IssuedOn,
		})
	}

	// Issue dates are stored as ISO strings, so lexicographic order is
	// chronological order
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].IssuedOn > merged[j].IssuedOn
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}
