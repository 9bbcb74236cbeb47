package store

import (
	"context"
	"errors"
	"strings"

	storeerrors "go-shiftdesk/internal/store/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=store_service.go -destination=mock/store_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateStoreRequest) (StoreResponse, error)
	GetAll(ctx context.Context) ([]StoreResponse, error)
	GetByID(ctx context.Context, id string) (StoreResponse, error)
	Update(ctx context.Context, id string, req UpdateStoreRequest) (StoreResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("store.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("store.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateStoreRequest) (StoreResponse, error) {
	s.logger.Debug("create store requested", zap.String("code", req.Code))

	timezone := req.Timezone
	if timezone == "" {
		timezone = "Asia/Jakarta"
	}

	st := &Store{
		ID:       uuid.New(),
		Code:     strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:     strings.TrimSpace(req.Name),
		Address:  strings.TrimSpace(req.Address),
		Timezone: timezone,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		s.logger.Error("create store persist failed", zap.Error(err))
		return StoreResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create store success", zap.String("store_id", st.ID.String()))
	return mapToResponse(*st), nil
}

func (s *service) GetAll(ctx context.Context) ([]StoreResponse, error) {
	stores, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all stores failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]StoreResponse, len(stores))
	for i, st := range stores {
		res[i] = mapToResponse(st)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (StoreResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StoreResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*st), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStoreRequest) (StoreResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StoreResponse{}, mapRepositoryError(err)
	}

	st.Name = strings.TrimSpace(req.Name)
	if req.Address != "" {
		st.Address = strings.TrimSpace(req.Address)
	}
	if req.Timezone != "" {
		st.Timezone = req.Timezone
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, st); err != nil {
		s.logger.Error("update store persist failed", zap.Error(err))
		return StoreResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update store success", zap.String("store_id", id))
	return mapToResponse(*st), nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storeerrors.ErrStoreNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return storeerrors.ErrStoreCodeAlreadyExists
	}

	return err
}

func mapToResponse(st Store) StoreResponse {
	return StoreResponse{
		ID:       st.ID.String(),
		Code:     st.Code,
		Name:     st.Name,
		Address:  st.Address,
		Timezone: st.Timezone,
		IsActive: st.IsActive,
	}
}
