package shift

import (
	"context"
	"errors"
	"regexp"
	"strings"

	shifterrors "go-shiftdesk/internal/shift/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, storeID string, req CreateShiftRequest) (ShiftResponse, error)
	GetAll(ctx context.Context, storeID string) ([]ShiftResponse, error)
	GetByID(ctx context.Context, storeID, id string) (ShiftResponse, error)
	Update(ctx context.Context, storeID, id string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, storeID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{repo: repo, logger: l}
}

func validateTimes(start, end string) error {
	if !timeOfDayRe.MatchString(start) || !timeOfDayRe.MatchString(end) {
		return shifterrors.ErrInvalidTimeFormat
	}
	return nil
}

func validateGenderRestriction(g string) error {
	switch g {
	case "", "male", "female":
		return nil
	}
	return shifterrors.ErrInvalidGenderRestriction
}

func (s *service) Create(ctx context.Context, storeID string, req CreateShiftRequest) (ShiftResponse, error) {
	s.logger.Debug("create shift requested",
		zap.String("store_id", storeID),
		zap.String("code", req.Code),
	)

	if err := validateTimes(req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("create shift invalid time",
			zap.String("start_time", req.StartTime),
			zap.String("end_time", req.EndTime),
		)
		return ShiftResponse{}, err
	}
	if err := validateGenderRestriction(req.GenderRestriction); err != nil {
		return ShiftResponse{}, err
	}

	sh := &Shift{
		ID:                uuid.New(),
		StoreID:           uuid.MustParse(storeID),
		Code:              strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:              strings.TrimSpace(req.Name),
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		GenderRestriction: req.GenderRestriction,
	}

	if err := s.repo.Create(ctx, sh); err != nil {
		s.logger.Error("create shift persist failed", zap.Error(err))
		return ShiftResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create shift success", zap.String("shift_id", sh.ID.String()))
	return mapToResponse(*sh), nil
}

func (s *service) GetAll(ctx context.Context, storeID string) ([]ShiftResponse, error) {
	shifts, err := s.repo.FindAllByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("get all shifts failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ShiftResponse, len(shifts))
	for i, sh := range shifts {
		res[i] = mapToResponse(sh)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string) (ShiftResponse, error) {
	sh, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sh), nil
}

func (s *service) Update(ctx context.Context, storeID, id string, req UpdateShiftRequest) (ShiftResponse, error) {
	if err := validateTimes(req.StartTime, req.EndTime); err != nil {
		return ShiftResponse{}, err
	}
	if err := validateGenderRestriction(req.GenderRestriction); err != nil {
		return ShiftResponse{}, err
	}

	sh, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}

	sh.Name = strings.TrimSpace(req.Name)
	sh.StartTime = req.StartTime
	sh.EndTime = req.EndTime
	sh.GenderRestriction = req.GenderRestriction

	if err := s.repo.Update(ctx, sh); err != nil {
		s.logger.Error("update shift persist failed", zap.Error(err))
		return ShiftResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update shift success", zap.String("shift_id", id))
	return mapToResponse(*sh), nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	if err := s.repo.Delete(ctx, storeID, id); err != nil {
		s.logger.Error("delete shift failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete shift success", zap.String("shift_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shifterrors.ErrShiftNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return shifterrors.ErrShiftCodeAlreadyExists
	}

	return err
}

func mapToResponse(sh Shift) ShiftResponse {
	return ShiftResponse{
		ID:                sh.ID.String(),
		StoreID:           sh.StoreID.String(),
		Code:              sh.Code,
		Name:              sh.Name,
		StartTime:         sh.StartTime,
		EndTime:           sh.EndTime,
		GenderRestriction: sh.GenderRestriction,
	}
}
