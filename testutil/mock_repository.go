package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/models"
)

// MockAuditRepository is a simple in-memory implementation of
// database.AuditRepository for testing.
type MockAuditRepository struct {
	entries []*models.LogEntry

	// CreateErr, when set, is returned from CreateLogEntry to exercise
	// failure paths.
	CreateErr error
}

// NewMockAuditRepository creates a new MockAuditRepository instance
func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{
		entries: make([]*models.LogEntry, 0),
	}
}

// CreateLogEntry simulates appending an audit log entry. It assigns an
// EntryID if missing, mirroring the BeforeCreate hook.
func (m *MockAuditRepository) CreateLogEntry(ctx context.Context, entry *models.LogEntry) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if entry.EntryID == uuid.Nil {
		entry.EntryID = uuid.New()
	}
	entry.LogID = uint(len(m.entries) + 1)
	m.entries = append(m.entries, entry)
	return nil
}

// ListLogEntries returns the stored entries, newest first
func (m *MockAuditRepository) ListLogEntries(ctx context.Context, filters *database.AuditFilters) ([]models.LogEntry, error) {
	out := make([]models.LogEntry, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if filters != nil {
			if filters.ActionType != nil && e.ActionType != *filters.ActionType {
				continue
			}
			if filters.Status != nil && e.Status != *filters.Status {
				continue
			}
		}
		out = append(out, *e)
		if filters != nil && filters.Limit > 0 && len(out) >= filters.Limit {
			break
		}
	}
	return out, nil
}

// CountLogEntries counts stored entries matching the action type and status
func (m *MockAuditRepository) CountLogEntries(ctx context.Context, actionType, status string) (int64, error) {
	var count int64
	for _, e := range m.entries {
		if e.ActionType == actionType && e.Status == status {
			count++
		}
	}
	return count, nil
}

// SummarizeLogEntries groups the stored entries by action type and status.
// The time window is ignored; mock entries are assumed recent.
func (m *MockAuditRepository) SummarizeLogEntries(ctx context.Context, windowHours int) ([]database.AuditSummaryCount, error) {
	type key struct{ action, status string }
	counts := make(map[key]int64)
	order := make([]key, 0)
	for _, e := range m.entries {
		k := key{e.ActionType, e.Status}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]database.AuditSummaryCount, 0, len(order))
	for _, k := range order {
		out = append(out, database.AuditSummaryCount{
			ActionType: k.action,
			Status:     k.status,
			Count:      counts[k],
		})
	}
	return out, nil
}

// Entries returns all entries stored in the mock (useful for test assertions)
func (m *MockAuditRepository) Entries() []*models.LogEntry {
	return m.entries
}

// Clear removes all stored entries (useful for test cleanup)
func (m *MockAuditRepository) Clear() {
	m.entries = make([]*models.LogEntry, 0)
}
