package services

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/models"
)

// EventPublisher mirrors audit entries onto an event stream for external
// consumers. Publishing is best-effort and never gates the database write.
type EventPublisher interface {
	PublishAuditEvent(ctx context.Context, fields map[string]string) error
}

// AuditService owns the append-only audit log. Every login, issuance, and
// verification attempt produces exactly one entry regardless of outcome.
type AuditService struct {
	repo      database.AuditRepository
	publisher EventPublisher
}

// NewAuditService creates a new audit service instance
func NewAuditService(repo database.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// NewAuditServiceWithPublisher creates an audit service that also mirrors
// each stored entry onto the given event stream
func NewAuditServiceWithPublisher(repo database.AuditRepository, publisher EventPublisher) *AuditService {
	return &AuditService{repo: repo, publisher: publisher}
}

// Append writes one audit entry synchronously. A write failure must never
// fail the primary operation: it is logged to the operational channel and
// swallowed.
func (s *AuditService) Append(ctx context.Context, entry *models.LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.FailureReason == "" {
		entry.FailureReason = models.FailureReasonNone
	}

	if err := entry.Validate(); err != nil {
		slog.Error("Refusing to write invalid audit entry", "error", err,
			"actionType", entry.ActionType, "status", entry.Status)
		return
	}

	if err := s.repo.CreateLogEntry(ctx, entry); err != nil {
		slog.Error("Failed to write audit entry", "error", err,
			"actionType", entry.ActionType, "userName", entry.UserName, "status", entry.Status)
		return
	}

	slog.Info("Audit entry created", "actionType", entry.ActionType,
		"userName", entry.UserName, "userRole", entry.UserRole, "status", entry.Status)

	if s.publisher != nil {
		if err := s.publisher.PublishAuditEvent(ctx, streamFields(entry)); err != nil {
			slog.Error("Failed to publish audit event", "error", err,
				"actionType", entry.ActionType, "entryId", entry.EntryID)
		}
	}
}

// streamFields flattens an entry into the string map carried on the event
// stream
func streamFields(entry *models.LogEntry) map[string]string {
	fields := map[string]string{
		"entryId":       entry.EntryID.String(),
		"timestamp":     entry.Timestamp.UTC().Format(time.RFC3339),
		"actionType":    entry.ActionType,
		"userId":        strconv.FormatUint(uint64(entry.UserID), 10),
		"userName":      entry.UserName,
		"userRole":      entry.UserRole,
		"status":        entry.Status,
		"failureReason": entry.FailureReason,
	}
	if entry.DocumentID != nil {
		fields["documentId"] = strconv.FormatUint(uint64(*entry.DocumentID), 10)
	}
	if entry.DocumentType != nil {
		fields["documentType"] = *entry.DocumentType
	}
	if entry.CheckerMethod != nil {
		fields["checkerMethod"] = *entry.CheckerMethod
	}
	return fields
}

// ListAll returns every audit entry ordered by timestamp descending
func (s *AuditService) ListAll(ctx context.Context) ([]models.LogEntry, error) {
	return s.repo.ListLogEntries(ctx, nil)
}

// Summarize returns entry counts grouped by (action type, status) within the
// trailing window
func (s *AuditService) Summarize(ctx context.Context, windowHours int) ([]models.AuditSummaryRow, error) {
	counts, err := s.repo.SummarizeLogEntries(ctx, windowHours)
	if err != nil {
		return nil, err
	}

	rows := make([]models.AuditSummaryRow, len(counts))
	for i, c := range counts {
		rows[i] = models.AuditSummaryRow{
			ActionType: c.ActionType,
			Status:     c.Status,
			Count:      c.Count,
		}
	}
	return rows, nil
}
