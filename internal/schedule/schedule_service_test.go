package schedule_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-shiftdesk/internal/schedule"
	scheduleerrors "go-shiftdesk/internal/schedule/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeScheduleRepository struct {
	upsertFn                  func(ctx context.Context, entry *schedule.ScheduleEntry) error
	findByStoreAndRangeFn     func(ctx context.Context, storeID string, from, to time.Time) ([]schedule.ScheduleEntry, error)
	findAssignmentFn          func(ctx context.Context, storeID, employeeID string, date time.Time) (*schedule.DayAssignment, error)
	deleteManualForEmployeeFn func(ctx context.Context, storeID, employeeID string, from, to time.Time) error
	deleteManualForStoreFn    func(ctx context.Context, storeID string, from, to time.Time) error
	replaceGeneratedFn        func(ctx context.Context, storeID string, from, to time.Time, entries []schedule.ScheduleEntry) error
	swapAssignmentsFn         func(ctx context.Context, storeID, employeeA, employeeB string, date time.Time) error
	summaryByStoreFn          func(ctx context.Context, storeID string, from, to time.Time) ([]schedule.SummaryRow, error)
}

func (f *fakeScheduleRepository) WithTx(_ *sql.Tx) schedule.Repository { return f }

func (f *fakeScheduleRepository) Upsert(ctx context.Context, entry *schedule.ScheduleEntry) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, entry)
	}
	return nil
}

func (f *fakeScheduleRepository) FindByStoreAndRange(ctx context.Context, storeID string, from, to time.Time) ([]schedule.ScheduleEntry, error) {
	if f.findByStoreAndRangeFn != nil {
		return f.findByStoreAndRangeFn(ctx, storeID, from, to)
	}
	return nil, nil
}

func (f *fakeScheduleRepository) FindAssignment(ctx context.Context, storeID, employeeID string, date time.Time) (*schedule.DayAssignment, error) {
	if f.findAssignmentFn != nil {
		return f.findAssignmentFn(ctx, storeID, employeeID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepository) DeleteManualForEmployee(ctx context.Context, storeID, employeeID string, from, to time.Time) error {
	if f.deleteManualForEmployeeFn != nil {
		return f.deleteManualForEmployeeFn(ctx, storeID, employeeID, from, to)
	}
	return nil
}

func (f *fakeScheduleRepository) DeleteManualForStore(ctx context.Context, storeID string, from, to time.Time) error {
	if f.deleteManualForStoreFn != nil {
		return f.deleteManualForStoreFn(ctx, storeID, from, to)
	}
	return nil
}

func (f *fakeScheduleRepository) ReplaceGenerated(ctx context.Context, storeID string, from, to time.Time, entries []schedule.ScheduleEntry) error {
	if f.replaceGeneratedFn != nil {
		return f.replaceGeneratedFn(ctx, storeID, from, to, entries)
	}
	return nil
}

func (f *fakeScheduleRepository) SwapAssignments(ctx context.Context, storeID, employeeA, employeeB string, date time.Time) error {
	if f.swapAssignmentsFn != nil {
		return f.swapAssignmentsFn(ctx, storeID, employeeA, employeeB, date)
	}
	return nil
}

func (f *fakeScheduleRepository) SummaryByStore(ctx context.Context, storeID string, from, to time.Time) ([]schedule.SummaryRow, error) {
	if f.summaryByStoreFn != nil {
		return f.summaryByStoreFn(ctx, storeID, from, to)
	}
	return nil, nil
}

type fakeEngineClient struct {
	generateFn func(ctx context.Context, storeID, month string) ([]schedule.EngineAssignment, error)
}

func (f *fakeEngineClient) Generate(ctx context.Context, storeID, month string) ([]schedule.EngineAssignment, error) {
	if f.generateFn != nil {
		return f.generateFn(ctx, storeID, month)
	}
	return nil, nil
}

func TestScheduleService_Generate(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New().String()
	emplA := uuid.New().String()
	emplB := uuid.New().String()
	shiftID := uuid.New().String()

	t.Run("manual entries win over generated ones", func(t *testing.T) {
		repo := &fakeScheduleRepository{}
		engine := &fakeEngineClient{
			generateFn: func(_ context.Context, _, _ string) ([]schedule.EngineAssignment, error) {
				return []schedule.EngineAssignment{
					{EmployeeID: emplA, Date: "2026-09-01", ShiftID: shiftID},
					{EmployeeID: emplB, Date: "2026-09-01", ShiftID: shiftID},
				}, nil
			},
		}

		// emplA already has a manual entry on 09-01
		manualDate, _ := time.Parse("2006-01-02", "2026-09-01")
		repo.findByStoreAndRangeFn = func(_ context.Context, _ string, _, _ time.Time) ([]schedule.ScheduleEntry, error) {
			return []schedule.ScheduleEntry{
				{
					EmployeeID: uuid.MustParse(emplA),
					Date:       manualDate,
					Source:     schedule.SourceManual,
				},
			}, nil
		}

		var replaced []schedule.ScheduleEntry
		repo.replaceGeneratedFn = func(_ context.Context, _ string, _, _ time.Time, entries []schedule.ScheduleEntry) error {
			replaced = entries
			return nil
		}

		svc := schedule.NewService(repo, engine, nil)

		_, err := svc.Generate(ctx, storeID, "2026-09")

		assert.NoError(t, err)
		assert.Len(t, replaced, 1)
		assert.Equal(t, emplB, replaced[0].EmployeeID.String())
		assert.Equal(t, schedule.SourceGenerated, replaced[0].Source)
	})

	t.Run("skips malformed engine rows instead of panicking", func(t *testing.T) {
		repo := &fakeScheduleRepository{}
		engine := &fakeEngineClient{
			generateFn: func(_ context.Context, _, _ string) ([]schedule.EngineAssignment, error) {
				return []schedule.EngineAssignment{
					{EmployeeID: emplA, Date: "2026-09-01", ShiftID: shiftID},
					{EmployeeID: "not-a-uuid", Date: "2026-09-02", ShiftID: shiftID},
					{EmployeeID: emplB, Date: "2026-09-03", ShiftID: "bad-shift"},
					{EmployeeID: emplB, Date: "09/04/2026", ShiftID: shiftID},
				}, nil
			},
		}

		var replaced []schedule.ScheduleEntry
		repo.replaceGeneratedFn = func(_ context.Context, _ string, _, _ time.Time, entries []schedule.ScheduleEntry) error {
			replaced = entries
			return nil
		}

		svc := schedule.NewService(repo, engine, nil)

		assert.NotPanics(t, func() {
			_, err := svc.Generate(ctx, storeID, "2026-09")
			assert.NoError(t, err)
		})
		assert.Len(t, replaced, 1)
		assert.Equal(t, emplA, replaced[0].EmployeeID.String())
	})

	t.Run("negative engine unavailable", func(t *testing.T) {
		repo := &fakeScheduleRepository{}
		engine := &fakeEngineClient{
			generateFn: func(_ context.Context, _, _ string) ([]schedule.EngineAssignment, error) {
				return nil, scheduleerrors.ErrEngineUnavailable
			},
		}

		svc := schedule.NewService(repo, engine, nil)

		_, err := svc.Generate(ctx, storeID, "2026-09")
		assert.ErrorIs(t, err, scheduleerrors.ErrEngineUnavailable)
	})

	t.Run("negative bad month", func(t *testing.T) {
		svc := schedule.NewService(&fakeScheduleRepository{}, &fakeEngineClient{}, nil)

		_, err := svc.Generate(ctx, storeID, "september")
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidMonth)
	})
}

func TestScheduleService_ShiftOn(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New().String()
	emplID := uuid.New().String()
	date, _ := time.Parse("2006-01-02", "2026-09-10")

	t.Run("success", func(t *testing.T) {
		repo := &fakeScheduleRepository{
			findAssignmentFn: func(_ context.Context, _, _ string, _ time.Time) (*schedule.DayAssignment, error) {
				return &schedule.DayAssignment{ShiftID: uuid.New().String(), ShiftCode: "P"}, nil
			},
		}
		svc := schedule.NewService(repo, &fakeEngineClient{}, nil)

		a, err := svc.ShiftOn(ctx, storeID, emplID, date)
		assert.NoError(t, err)
		assert.Equal(t, "P", a.ShiftCode)
	})

	t.Run("negative no shift that day", func(t *testing.T) {
		svc := schedule.NewService(&fakeScheduleRepository{}, &fakeEngineClient{}, nil)

		_, err := svc.ShiftOn(ctx, storeID, emplID, date)
		assert.ErrorIs(t, err, scheduleerrors.ErrNoShiftScheduled)
	})
}

func TestScheduleService_ShiftSummary(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New().String()
	emplID := uuid.New().String()

	t.Run("aggregates rows and caches the result", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		cacheKey := schedule.GetSummaryKey(storeID, "2026-09")

		repo := &fakeScheduleRepository{
			summaryByStoreFn: func(_ context.Context, _ string, _, _ time.Time) ([]schedule.SummaryRow, error) {
				return []schedule.SummaryRow{
					{EmployeeID: emplID, FullName: "Sari Utami", ShiftCode: "P", Count: 10},
					{EmployeeID: emplID, FullName: "Sari Utami", ShiftCode: "S", Count: 8},
				}, nil
			},
		}

		expected := []schedule.ShiftSummaryRow{
			{
				EmployeeID: emplID,
				FullName:   "Sari Utami",
				Counts:     map[string]int{"P": 10, "S": 8},
				Total:      18,
			},
		}
		expectedJSON, _ := json.Marshal(expected)

		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSet(cacheKey, expectedJSON, 10*time.Minute).SetVal("OK")

		svc := schedule.NewService(repo, &fakeEngineClient{}, rdb)

		rows, err := svc.ShiftSummary(ctx, storeID, "2026-09")

		assert.NoError(t, err)
		assert.Equal(t, expected, rows)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("serves from cache without touching the repo", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		cacheKey := schedule.GetSummaryKey(storeID, "2026-09")

		cached := []schedule.ShiftSummaryRow{
			{EmployeeID: emplID, FullName: "Sari Utami", Counts: map[string]int{"P": 3}, Total: 3},
		}
		cachedJSON, _ := json.Marshal(cached)
		redisMock.ExpectGet(cacheKey).SetVal(string(cachedJSON))

		repo := &fakeScheduleRepository{
			summaryByStoreFn: func(_ context.Context, _ string, _, _ time.Time) ([]schedule.SummaryRow, error) {
				t.Fatal("repo should not be called on cache hit")
				return nil, nil
			},
		}

		svc := schedule.NewService(repo, &fakeEngineClient{}, rdb)

		rows, err := svc.ShiftSummary(ctx, storeID, "2026-09")

		assert.NoError(t, err)
		assert.Equal(t, cached, rows)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
