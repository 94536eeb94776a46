// Package database defines the persistence interfaces for the document
// store, the audit log, and the user table, plus their GORM implementation.
package database

import (
	"context"
	"errors"

	"github.com/haawaard/Barangay-Document-Checker/models"
)

// ErrNotFound is returned when a lookup legitimately matches no row
var ErrNotFound = errors.New("record not found")

// DocumentRepository is the per-type document store. Each document type has a
// structurally distinct table, so the interface is explicit per type; callers
// needing a unified view go through models.DocumentRecord.
//
// Required-field validation is the caller's responsibility; the store only
// persists and looks up.
type DocumentRepository interface {
	CreateIndigency(ctx context.Context, doc *models.IndigencyCertificate) error
	CreateClearance(ctx context.Context, doc *models.BarangayClearance) error
	CreateBusinessPermit(ctx context.Context, doc *models.BusinessPermit) error

	FindIndigencyByID(ctx context.Context, id uint) (*models.IndigencyCertificate, error)
	FindClearanceByID(ctx context.Context, id uint) (*models.BarangayClearance, error)
	FindBusinessPermitByID(ctx context.Context, id uint) (*models.BusinessPermit, error)

	FindIndigencyByHash(ctx context.Context, hash string) (*models.IndigencyCertificate, error)
	FindClearanceByHash(ctx context.Context, hash string) (*models.BarangayClearance, error)
	FindBusinessPermitByHash(ctx context.Context, hash string) (*models.BusinessPermit, error)

	CountIndigency(ctx context.Context) (int64, error)
	CountClearance(ctx context.Context) (int64, error)
	CountBusinessPermit(ctx context.Context) (int64, error)

	RecentIndigency(ctx context.Context, limit int) ([]models.IndigencyCertificate, error)
	RecentClearance(ctx context.Context, limit int) ([]models.BarangayClearance, error)
	RecentBusinessPermit(ctx context.Context, limit int) ([]models.BusinessPermit, error)
}

// AuditFilters narrows audit log listings
type AuditFilters struct {
	ActionType *string
	Status     *string
	Limit      int
}

// AuditSummaryCount is one grouped count produced by Summarize
type AuditSummaryCount struct {
	ActionType string
	Status     string
	Count      int64
}

// AuditRepository is the append-only audit log store
type AuditRepository interface {
	CreateLogEntry(ctx context.Context, entry *models.LogEntry) error
	ListLogEntries(ctx context.Context, filters *AuditFilters) ([]models.LogEntry, error)
	CountLogEntries(ctx context.Context, actionType, status string) (int64, error)
	SummarizeLogEntries(ctx context.Context, windowHours int) ([]AuditSummaryCount, error)
}

// UserRepository looks up staff accounts for login
type UserRepository interface {
	FindUserByCredentials(ctx context.Context, name, password string) (*models.User, error)
}
