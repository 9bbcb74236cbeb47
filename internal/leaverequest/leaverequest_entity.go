package leaverequest

import (
	"time"

	"go-shiftdesk/internal/employee"

	"github.com/google/uuid"
)

const (
	TypeIzin  = "izin"
	TypeCuti  = "cuti"
	TypeSakit = "sakit"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveType  string    `gorm:"type:varchar(10);not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	TotalDays  int       `gorm:"not null"`
	Reason     string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(10);not null;default:'pending'"`

	DecidedByID   *uuid.UUID `gorm:"type:uuid"`
	DecidedByName string     `gorm:"type:varchar(255)"`
	DecidedByRole string     `gorm:"type:varchar(20)"`
	DecidedAt     *time.Time
	RejectReason  *string `gorm:"type:text"`
	CancelReason  *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
}
