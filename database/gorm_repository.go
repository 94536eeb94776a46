package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/haawaard/Barangay-Document-Checker/models"
	"gorm.io/gorm"
)

// GormRepository implements the repository interfaces on GORM (works with
// PostgreSQL or SQLite)
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository and auto-migrates the schema
func NewGormRepository(db *gorm.DB) *GormRepository {
	err := db.AutoMigrate(
		&models.IndigencyCertificate{},
		&models.BarangayClearance{},
		&models.BusinessPermit{},
		&models.LogEntry{},
		&models.User{},
	)
	if err != nil {
		// Log migration error but don't fail repository creation; the
		// actual database operation will fail later if the schema is wrong
		slog.Warn("Failed to auto-migrate schema", "error", err)
	}
	return &GormRepository{db: db}
}

// CreateIndigency inserts an indigency certificate and fills its primary key
func (r *GormRepository) CreateIndigency(ctx context.Context, doc *models.IndigencyCertificate) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to insert indigency certificate: %w", err)
	}
	return nil
}

// CreateClearance inserts a barangay clearance and fills its primary key
func (r *GormRepository) CreateClearance(ctx context.Context, doc *models.BarangayClearance) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to insert barangay clearance: %w", err)
	}
	return nil
}

// CreateBusinessPermit inserts a business permit and fills its primary key
func (r *GormRepository) CreateBusinessPermit(ctx context.Context, doc *models.BusinessPermit) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to insert business permit: %w", err)
	}
	return nil
}

// FindIndigencyByID retrieves an indigency certificate by primary key
func (r *GormRepository) FindIndigencyByID(ctx context.Context, id uint) (*models.IndigencyCertificate, error) {
	var doc models.IndigencyCertificate
	if err := r.db.WithContext(ctx).First(&doc, "clearance_id = ?", id).Error; err != nil {
		return nil, normalizeErr(err, "indigency certificate")
	}
	return &doc, nil
}

// FindClearanceByID retrieves a barangay clearance by primary key
func (r *GormRepository) FindClearanceByID(ctx context.Context, id uint) (*models.BarangayClearance, error) {
	var doc models.BarangayClearance
	if err := r.db.WithContext(ctx).First(&doc, "clearance_id = ?", id).Error; err != nil {
		return nil, normalizeErr(err, "barangay clearance")
	}
	return &doc, nil
}

// FindBusinessPermitByID retrieves a business permit by primary key
func (r *GormRepository) FindBusinessPermitByID(ctx context.Context, id uint) (*models.BusinessPermit, error) {
	var doc models.BusinessPermit
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, normalizeErr(err, "business permit")
	}
	return &doc, nil
}

// FindIndigencyByHash retrieves an indigency certificate by its hash code
func (r *GormRepository) FindIndigencyByHash(ctx context.Context, hash string) (*models.IndigencyCertificate, error) {
	var doc models.IndigencyCertificate
	if err := r.db.WithContext(ctx).First(&doc, "hash_code = ?", hash).Error; err != nil {
		return nil, normalizeErr(err, "indigency certificate")
	}
	return &doc, nil
}

// FindClearanceByHash retrieves a barangay clearance by its hash code
func (r *GormRepository) FindClearanceByHash(ctx context.Context, hash string) (*models.BarangayClearance, error) {
	var doc models.BarangayClearance
	if err := r.db.WithContext(ctx).First(&doc, "hash_code = ?", hash).Error; err != nil {
		return nil, normalizeErr(err, "barangay clearance")
	}
	return &doc, nil
}

// FindBusinessPermitByHash retrieves a business permit by its hash code
func (r *GormRepository) FindBusinessPermitByHash(ctx context.Context, hash string) (*models.BusinessPermit, error) {
	var doc models.BusinessPermit
	if err := r.db.WithContext(ctx).First(&doc, "hash_code = ?", hash).Error; err != nil {
		return nil, normalizeErr(err, "business permit")
	}
	return &doc, nil
}

// CountIndigency returns the indigency table row count
func (r *GormRepository) CountIndigency(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.IndigencyCertificate{})
}

// CountClearance returns the clearance table row count
func (r *GormRepository) CountClearance(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.BarangayClearance{})
}

// CountBusinessPermit returns the business permit table row count
func (r *GormRepository) CountBusinessPermit(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.BusinessPermit{})
}

func (r *GormRepository) count(ctx context.Context, model interface{}) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(model).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return total, nil
}

// RecentIndigency lists the most recently issued indigency certificates
func (r *GormRepository) RecentIndigency(ctx context.Context, limit int) ([]models.IndigencyCertificate, error) {
	var docs []models.IndigencyCertificate
	err := r.db.WithContext(ctx).Order("\"IssuedOn\" DESC").Limit(clampLimit(limit)).Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent indigency certificates: %w", err)
	}
	return docs, nil
}

// RecentClearance lists the most recently issued barangay clearances
func (r *GormRepository) RecentClearance(ctx context.Context, limit int) ([]models.BarangayClearance, error) {
	var docs []models.BarangayClearance
	err := r.db.WithContext(ctx).Order("\"IssuedOn\" DESC").Limit(clampLimit(limit)).Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent barangay clearances: %w", err)
	}
	return docs, nil
}

// RecentBusinessPermit lists the most recently issued business permits
func (r *GormRepository) RecentBusinessPermit(ctx context.Context, limit int) ([]models.BusinessPermit, error) {
	var docs []models.BusinessPermit
	err := r.db.WithContext(ctx).Order("issued_on DESC").Limit(clampLimit(limit)).Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent business permits: %w", err)
	}
	return docs, nil
}

// CreateLogEntry appends an audit log entry
func (r *GormRepository) CreateLogEntry(ctx context.Context, entry *models.LogEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}
	return nil
}

// ListLogEntries lists audit log entries newest first with optional filters
func (r *GormRepository) ListLogEntries(ctx context.Context, filters *AuditFilters) ([]models.LogEntry, error) {
	var entries []models.LogEntry

	query := r.db.WithContext(ctx).Model(&models.LogEntry{})
	if filters != nil {
		if filters.ActionType != nil && *filters.ActionType != "" {
			query = query.Where("\"ActionType\" = ?", *filters.ActionType)
		}
		if filters.Status != nil && *filters.Status != "" {
			query = query.Where("\"Status\" = ?", *filters.Status)
		}
		if filters.Limit > 0 {
			query = query.Limit(clampLimit(filters.Limit))
		}
	}

	if err := query.Order("\"Timestamp\" DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit log entries: %w", err)
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}
	return entries, nil
}

// CountLogEntries counts audit entries by action type and status
func (r *GormRepository) CountLogEntries(ctx context.Context, actionType, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.LogEntry{}).
		Where("\"ActionType\" = ? AND \"Status\" = ?", actionType, status).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count audit log entries: %w", err)
	}
	return total, nil
}

// SummarizeLogEntries groups entry counts by (action type, status) within the
// trailing window
func (r *GormRepository) SummarizeLogEntries(ctx context.Context, windowHours int) ([]AuditSummaryCount, error) {
	if windowHours <= 0 {
		windowHours = 24
	}

	var rows []AuditSummaryCount
	err := r.db.WithContext(ctx).Model(&models.LogEntry{}).
		Select("\"ActionType\" AS action_type, \"Status\" AS status, COUNT(*) AS count").
		Where("\"Timestamp\" >= ?", nowFunc().Add(-windowDuration(windowHours))).
		Group("\"ActionType\", \"Status\"").
		Order("\"ActionType\", \"Status\"").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize audit log entries: %w", err)
	}
	if rows == nil {
		rows = []AuditSummaryCount{}
	}
	return rows, nil
}

// FindUserByCredentials matches a staff account by name and stored password
func (r *GormRepository) FindUserByCredentials(ctx context.Context, name, password string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "name = ? AND password = ?", name, password).Error
	if err != nil {
		return nil, normalizeErr(err, "user")
	}
	return &user, nil
}

// nowFunc is a hook for tests that need a fixed clock
var nowFunc = time.Now

func windowDuration(hours int) time.Duration {
	return time.Duration(hours) * time.Hour
}

func normalizeErr(err error, kind string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to retrieve %s: %w", kind, err)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 100
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}
