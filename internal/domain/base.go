package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel contains common fields for all domain entities.
// Soft deletion is modeled with the IsActive flag: inactive rows stay in
// the table but are invisible to normal reads until restored.
type BaseModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	ModifiedAt time.Time `gorm:"not null;autoUpdateTime" json:"modified_at"`
	IsActive   bool      `gorm:"not null;default:true;index" json:"is_active"`
}

// BeforeCreate assigns a UUID primary key and defaults the active flag.
// Generating the ID here keeps behavior identical across postgres and sqlite.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
		m.IsActive = true
	}
	return nil
}

// PrimaryID returns the entity's identifier.
func (m BaseModel) PrimaryID() uuid.UUID {
	return m.ID
}

// Active reports whether the entity is visible to normal reads.
func (m BaseModel) Active() bool {
	return m.IsActive
}

// SetActive flips the soft-delete flag.
func (m *BaseModel) SetActive(active bool) {
	m.IsActive = active
}
