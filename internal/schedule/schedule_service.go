package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	scheduleerrors "go-shiftdesk/internal/schedule/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const summaryKeyPrefix = "schedule:summary:"

func GetSummaryKey(storeID, month string) string {
	return fmt.Sprintf("%s%s:%s", summaryKeyPrefix, storeID, month)
}

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	SaveManual(ctx context.Context, storeID string, req SaveEntryRequest) (EntryResponse, error)
	GetMonth(ctx context.Context, storeID, month string) ([]EntryResponse, error)
	Generate(ctx context.Context, storeID, month string) ([]EntryResponse, error)
	ResetEmployee(ctx context.Context, storeID, employeeID, month string) error
	ResetAll(ctx context.Context, storeID, month string) error
	ShiftOn(ctx context.Context, storeID, employeeID string, date time.Time) (*DayAssignment, error)
	ApplySwap(ctx context.Context, storeID, employeeA, employeeB string, date time.Time) error
	ShiftSummary(ctx context.Context, storeID, month string) ([]ShiftSummaryRow, error)
}

type service struct {
	repo   Repository
	engine EngineClient
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, engine EngineClient, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{
		repo:   repo,
		engine: engine,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func monthRange(month string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, scheduleerrors.ErrInvalidMonth
	}
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}

func (s *service) SaveManual(ctx context.Context, storeID string, req SaveEntryRequest) (EntryResponse, error) {
	s.logger.Debug("save manual entry requested",
		zap.String("store_id", storeID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		s.logger.Warn("save manual entry invalid date", zap.String("date", req.Date))
		return EntryResponse{}, scheduleerrors.ErrInvalidDate
	}

	entry := &ScheduleEntry{
		ID:         uuid.New(),
		StoreID:    uuid.MustParse(storeID),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Date:       date,
		ShiftID:    uuid.MustParse(req.ShiftID),
		Source:     SourceManual,
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		s.logger.Error("save manual entry persist failed", zap.Error(err))
		return EntryResponse{}, err
	}

	s.invalidateSummary(ctx, storeID, date.Format("2006-01"))

	s.logger.Info("save manual entry success",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)
	return mapEntry(*entry), nil
}

func (s *service) GetMonth(ctx context.Context, storeID, month string) ([]EntryResponse, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		s.logger.Error("get month failed", zap.Error(err))
		return nil, err
	}

	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapEntry(e)
	}
	return res, nil
}

// Generate asks the external engine for a month and hybrid-merges the
// result: any cell that already has a manual entry keeps it.
func (s *service) Generate(ctx context.Context, storeID, month string) ([]EntryResponse, error) {
	s.logger.Debug("generate schedule requested",
		zap.String("store_id", storeID),
		zap.String("month", month),
	)

	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	assignments, err := s.engine.Generate(ctx, storeID, month)
	if err != nil {
		s.logger.Error("generate schedule engine call failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.FindByStoreAndRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	manual := make(map[string]bool, len(existing))
	for _, e := range existing {
		if e.Source == SourceManual {
			manual[e.EmployeeID.String()+"|"+e.Date.Format("2006-01-02")] = true
		}
	}

	entries := make([]ScheduleEntry, 0, len(assignments))
	for _, a := range assignments {
		if manual[a.EmployeeID+"|"+a.Date] {
			continue
		}
		date, err := time.Parse("2006-01-02", a.Date)
		if err != nil {
			s.logger.Warn("generate schedule skipping malformed engine date", zap.String("date", a.Date))
			continue
		}
		employeeID, err := uuid.Parse(a.EmployeeID)
		if err != nil {
			s.logger.Warn("generate schedule skipping malformed engine employee id",
				zap.String("employee_id", a.EmployeeID))
			continue
		}
		shiftID, err := uuid.Parse(a.ShiftID)
		if err != nil {
			s.logger.Warn("generate schedule skipping malformed engine shift id",
				zap.String("shift_id", a.ShiftID))
			continue
		}
		entries = append(entries, ScheduleEntry{
			ID:         uuid.New(),
			StoreID:    uuid.MustParse(storeID),
			EmployeeID: employeeID,
			Date:       date,
			ShiftID:    shiftID,
			Source:     SourceGenerated,
		})
	}

	if err := s.repo.ReplaceGenerated(ctx, storeID, from, to, entries); err != nil {
		s.logger.Error("generate schedule persist failed", zap.Error(err))
		return nil, err
	}

	s.invalidateSummary(ctx, storeID, month)

	s.logger.Info("generate schedule success",
		zap.String("store_id", storeID),
		zap.String("month", month),
		zap.Int("generated", len(entries)),
		zap.Int("manual_kept", len(manual)),
	)

	return s.GetMonth(ctx, storeID, month)
}

func (s *service) ResetEmployee(ctx context.Context, storeID, employeeID, month string) error {
	from, to, err := monthRange(month)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteManualForEmployee(ctx, storeID, employeeID, from, to); err != nil {
		s.logger.Error("reset employee schedule failed", zap.Error(err))
		return err
	}

	s.invalidateSummary(ctx, storeID, month)
	s.logger.Info("reset employee schedule success",
		zap.String("employee_id", employeeID),
		zap.String("month", month),
	)
	return nil
}

func (s *service) ResetAll(ctx context.Context, storeID, month string) error {
	from, to, err := monthRange(month)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteManualForStore(ctx, storeID, from, to); err != nil {
		s.logger.Error("reset all schedules failed", zap.Error(err))
		return err
	}

	s.invalidateSummary(ctx, storeID, month)
	s.logger.Info("reset all schedules success", zap.String("month", month))
	return nil
}

func (s *service) ShiftOn(ctx context.Context, storeID, employeeID string, date time.Time) (*DayAssignment, error) {
	a, err := s.repo.FindAssignment(ctx, storeID, employeeID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduleerrors.ErrNoShiftScheduled
		}
		return nil, err
	}
	return a, nil
}

func (s *service) ApplySwap(ctx context.Context, storeID, employeeA, employeeB string, date time.Time) error {
	if err := s.repo.SwapAssignments(ctx, storeID, employeeA, employeeB, date); err != nil {
		s.logger.Error("apply swap failed",
			zap.String("store_id", storeID),
			zap.Error(err),
		)
		return err
	}

	s.invalidateSummary(ctx, storeID, date.Format("2006-01"))
	return nil
}

func (s *service) ShiftSummary(ctx context.Context, storeID, month string) ([]ShiftSummaryRow, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	cacheKey := GetSummaryKey(storeID, month)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var rows []ShiftSummaryRow
			if json.Unmarshal([]byte(cached), &rows) == nil {
				return rows, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		raw, err := s.repo.SummaryByStore(ctx, storeID, from, to)
		if err != nil {
			return nil, err
		}

		byEmployee := make(map[string]*ShiftSummaryRow)
		order := make([]string, 0)
		for _, r := range raw {
			row, ok := byEmployee[r.EmployeeID]
			if !ok {
				row = &ShiftSummaryRow{
					EmployeeID: r.EmployeeID,
					FullName:   r.FullName,
					Counts:     map[string]int{},
				}
				byEmployee[r.EmployeeID] = row
				order = append(order, r.EmployeeID)
			}
			row.Counts[r.ShiftCode] += r.Count
			row.Total += r.Count
		}

		rows := make([]ShiftSummaryRow, len(order))
		for i, id := range order {
			rows[i] = *byEmployee[id]
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(rows); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 10*time.Minute)
			}
		}

		return rows, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]ShiftSummaryRow), nil
}

func (s *service) invalidateSummary(ctx context.Context, storeID, month string) {
	if s.rdb == nil {
		return
	}
	key := GetSummaryKey(storeID, month)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate summary cache",
			zap.Error(err),
			zap.String("key", key),
		)
	}
}

func mapEntry(e ScheduleEntry) EntryResponse {
	return EntryResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID.String(),
		Date:       e.Date.Format("2006-01-02"),
		ShiftID:    e.ShiftID.String(),
		Source:     e.Source,
	}
}
