package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel contains the creation timestamp shared by all records.
// UpdatedAt is intentionally omitted: issued documents and audit entries are
// immutable (created once, never updated).
type BaseModel struct {
	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// BeforeCreate GORM hook for BaseModel
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	return nil
}
