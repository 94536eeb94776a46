package models

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/haawaard/Barangay-Document-Checker/config"
	"gorm.io/gorm"
)

// Enum configuration (loaded from the YAML config file at startup)
var (
	enumConfig     *config.AuditEnums
	enumConfigOnce sync.Once
)

// SetEnumConfig sets the enum configuration (called once at service startup)
func SetEnumConfig(enums *config.AuditEnums) {
	enumConfigOnce.Do(func() {
		enumConfig = enums
	})
}

// LogEntry represents one append-only audit log row in log_entries.
// Entries are written for logins, document issuances, and QR verification
// attempts; they are never updated or deleted.
type LogEntry struct {
	LogID   uint      `gorm:"column:LogID;primaryKey;autoIncrement" json:"LogID"`
	EntryID uuid.UUID `gorm:"column:entry_id;type:uuid;uniqueIndex" json:"entryId"`

	Timestamp  time.Time `gorm:"column:Timestamp;not null;index:idx_log_entries_timestamp" json:"Timestamp"`
	ActionType string    `gorm:"column:ActionType;type:varchar(50);not null;index:idx_log_entries_action" json:"ActionType"`

	// Document reference; IDs are unique per table only, so DocumentID is
	// meaningful only together with DocumentType.
	DocumentID   *uint   `gorm:"column:DocumentID" json:"DocumentID"`
	DocumentType *string `gorm:"column:DocumentType;type:varchar(50)" json:"DocumentType"`

	CheckerMethod *string `gorm:"column:CheckerMethod;type:varchar(50)" json:"CheckerMethod"`

	UserID   uint   `gorm:"column:UserID;not null" json:"UserID"`
	UserName string `gorm:"column:UserName;type:varchar(100);not null" json:"UserName"`
	UserRole string `gorm:"column:UserRole;type:varchar(50);not null" json:"UserRole"`

	Status        string `gorm:"column:Status;type:varchar(20);not null;index:idx_log_entries_status" json:"Status"`
	FailureReason string `gorm:"column:FailureReason;type:varchar(255);not null;default:'N/A'" json:"FailureReason"`

	BaseModel
}

// TableName sets the table name for LogEntry
func (LogEntry) TableName() string {
	return "log_entries"
}

// BeforeCreate hook to set default values
func (l *LogEntry) BeforeCreate(tx *gorm.DB) error {
	if l.EntryID == uuid.Nil {
		l.EntryID = uuid.New()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}
	if l.FailureReason == "" {
		l.FailureReason = FailureReasonNone
	}
	return l.BaseModel.BeforeCreate(tx)
}

// Validate performs validation checks matching the database constraints.
// Uses the enum configuration when loaded, otherwise the compiled-in defaults.
func (l *LogEntry) Validate() error {
	enums := enumConfig
	if enums == nil {
		enums = &config.DefaultEnums
	}

	if !enums.IsValidActionType(l.ActionType) {
		return fmt.Errorf("invalid actionType: %s (must be one of: %v)", l.ActionType, enums.ActionTypes)
	}
	if !enums.IsValidStatus(l.Status) {
		return fmt.Errorf("invalid status: %s (must be one of: %v)", l.Status, enums.Statuses)
	}
	if l.DocumentType != nil && *l.DocumentType != "" && !enums.IsValidDocumentType(*l.DocumentType) {
		return fmt.Errorf("invalid documentType: %s", *l.DocumentType)
	}
	if l.UserName == "" {
		return fmt.Errorf("userName is required")
	}
	return nil
}
