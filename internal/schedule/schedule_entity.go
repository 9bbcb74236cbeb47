package schedule

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceGenerated = "generated"
	SourceManual    = "manual"
)

// ScheduleEntry assigns one employee to one shift on one date.
// Manual entries survive regeneration; generated ones do not.
type ScheduleEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID `gorm:"type:uuid;not null;index:idx_schedule_store_date"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_schedule_employee_date"`
	Date       time.Time `gorm:"type:date;not null;index:idx_schedule_store_date;uniqueIndex:uq_schedule_employee_date"`
	ShiftID    uuid.UUID `gorm:"type:uuid;not null"`
	Source     string    `gorm:"type:varchar(10);not null;default:'generated'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
