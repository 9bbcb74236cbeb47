package shiftswap

import (
	"time"

	"go-shiftdesk/internal/employee"

	"github.com/google/uuid"
)

// SwapRequest tracks two decisions at once: the partner's answer and the
// approver's. Status covers the approver track, PartnerStatus the partner
// track; shift codes are resolved from the schedule at creation time so
// the record stays readable after the schedule changes.
type SwapRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`
	PartnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Date        time.Time `gorm:"type:date;not null"`
	Reason      string    `gorm:"type:text;not null"`

	RequesterShiftID   uuid.UUID `gorm:"type:uuid;not null"`
	RequesterShiftCode string    `gorm:"type:varchar(10);not null"`
	PartnerShiftID     uuid.UUID `gorm:"type:uuid;not null"`
	PartnerShiftCode   string    `gorm:"type:varchar(10);not null"`

	Status        string `gorm:"type:varchar(10);not null;default:'pending'"`
	PartnerStatus string `gorm:"type:varchar(10);not null;default:'waiting'"`

	PartnerRespondedAt *time.Time
	DeclineReason      *string `gorm:"type:text"`

	DecidedByID   *uuid.UUID `gorm:"type:uuid"`
	DecidedByName string     `gorm:"type:varchar(255)"`
	DecidedByRole string     `gorm:"type:varchar(20)"`
	DecidedAt     *time.Time
	RejectReason  *string `gorm:"type:text"`
	CancelReason  *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Requester *employee.Employee `gorm:"foreignKey:RequesterID"`
	Partner   *employee.Employee `gorm:"foreignKey:PartnerID"`
}
