package schedule

import (
	"context"
	"database/sql"
	"time"

	"go-shiftdesk/internal/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, entry *ScheduleEntry) error
	FindByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]ScheduleEntry, error)
	FindAssignment(ctx context.Context, storeID, employeeID string, date time.Time) (*DayAssignment, error)
	DeleteManualForEmployee(ctx context.Context, storeID, employeeID string, from, to time.Time) error
	DeleteManualForStore(ctx context.Context, storeID string, from, to time.Time) error
	ReplaceGenerated(ctx context.Context, storeID string, from, to time.Time, entries []ScheduleEntry) error
	SwapAssignments(ctx context.Context, storeID, employeeA, employeeB string, date time.Time) error
	SummaryByStore(ctx context.Context, storeID string, from, to time.Time) ([]SummaryRow, error)
}

type SummaryRow struct {
	EmployeeID string
	FullName   string
	ShiftCode  string
	Count      int
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Upsert(ctx context.Context, entry *ScheduleEntry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"shift_id", "source", "updated_at"}),
		}).
		Create(entry).Error
}

func (r *repository) FindByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]ScheduleEntry, error) {
	var entries []ScheduleEntry
	err := r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date asc").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindAssignment(ctx context.Context, storeID, employeeID string, date time.Time) (*DayAssignment, error) {
	var a DayAssignment
	err := r.db.WithContext(ctx).
		Table("schedule_entries se").
		Select("se.shift_id::text as shift_id, s.code as shift_code, s.name as shift_name, s.start_time, s.end_time").
		Joins("JOIN shifts s ON s.id = se.shift_id").
		Where("se.store_id = ?", storeID).
		Where("se.employee_id = ?", employeeID).
		Where("se.date = ?", date).
		Scan(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ShiftID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *repository) DeleteManualForEmployee(ctx context.Context, storeID, employeeID string, from, to time.Time) error {
	return r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Where("employee_id = ?", employeeID).
		Where("date BETWEEN ? AND ?", from, to).
		Where("source = ?", SourceManual).
		Delete(&ScheduleEntry{}).Error
}

func (r *repository) DeleteManualForStore(ctx context.Context, storeID string, from, to time.Time) error {
	return r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Where("date BETWEEN ? AND ?", from, to).
		Where("source = ?", SourceManual).
		Delete(&ScheduleEntry{}).Error
}

// ReplaceGenerated wipes the generated layer for the range and writes a
// fresh one. Manual entries are untouched; the caller filters collisions
// so a manual cell always wins.
func (r *repository) ReplaceGenerated(ctx context.Context, storeID string, from, to time.Time, entries []ScheduleEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(store.Scope(storeID)).
			Where("date BETWEEN ? AND ?", from, to).
			Where("source = ?", SourceGenerated).
			Delete(&ScheduleEntry{}).Error; err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}

		return tx.CreateInBatches(entries, 200).Error
	})
}

// SwapAssignments exchanges the shift_id of two employees on a date.
// Used when an approved swap is applied back onto the schedule.
func (r *repository) SwapAssignments(ctx context.Context, storeID, employeeA, employeeB string, date time.Time) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE schedule_entries se
		SET shift_id = other.shift_id, updated_at = now()
		FROM schedule_entries other
		WHERE se.store_id = ? AND other.store_id = se.store_id
			AND se.date = ? AND other.date = se.date
			AND se.employee_id IN (?, ?)
			AND other.employee_id IN (?, ?)
			AND se.employee_id <> other.employee_id
	`, storeID, date, employeeA, employeeB, employeeA, employeeB).Error
}

func (r *repository) SummaryByStore(ctx context.Context, storeID string, from, to time.Time) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := r.db.WithContext(ctx).
		Table("schedule_entries se").
		Select("se.employee_id::text as employee_id, e.full_name, s.code as shift_code, COUNT(*) as count").
		Joins("JOIN employees e ON e.id = se.employee_id").
		Joins("JOIN shifts s ON s.id = se.shift_id").
		Where("se.store_id = ?", storeID).
		Where("se.date BETWEEN ? AND ?", from, to).
		Group("se.employee_id, e.full_name, s.code").
		Order("e.full_name asc").
		Scan(&rows).Error
	return rows, err
}
