package shift

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift is a shift type definition (morning, afternoon, night),
// not a scheduled assignment. Assignments live in the schedule module.
type Shift struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Code              string    `gorm:"type:varchar(10);not null"`
	Name              string    `gorm:"type:varchar(100);not null"`
	StartTime         string    `gorm:"type:varchar(5);not null"`
	EndTime           string    `gorm:"type:varchar(5);not null"`
	GenderRestriction string    `gorm:"type:varchar(10)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}
