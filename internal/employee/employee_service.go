package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "go-shiftdesk/internal/employee/errors"
	"go-shiftdesk/internal/shared/contextutil"
	"go-shiftdesk/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(storeID string) string {
	return EmployeeOptionsKeyPrefix + storeID
}

func validRole(role string) bool {
	switch role {
	case "employee", "acos", "cos", "ac", "admin":
		return true
	}
	return false
}

func validGender(g string) bool {
	return g == "male" || g == "female"
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, storeID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, storeID string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, storeID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, storeID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, storeID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, storeID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	storeID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("store_id", storeID),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	if !validRole(req.Role) {
		s.logger.Warn("create employee invalid role", zap.String("role", req.Role))
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}
	if !validGender(req.Gender) {
		s.logger.Warn("create employee invalid gender", zap.String("gender", req.Gender))
		return EmployeeResponse{}, employeeerrors.ErrInvalidGender
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.NIK == "" {
		nextVal, err := s.counter.GetNextValue(ctx, storeID, "nik")
		if err != nil {
			s.logger.Error("create employee generate nik failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.NIK = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:       uuid.New(),
		StoreID:  uuid.MustParse(storeID),
		NIK:      req.NIK,
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
		Gender:   req.Gender,
		IsActive: true,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx, storeID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, storeID string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("store_id", storeID))
	empls, err := s.repo.FindAllByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

// GetOptions backs the partner and approver pickers; the roster changes
// rarely so it is cached aggressively.
func (s *service) GetOptions(ctx context.Context, storeID string) ([]EmployeeResponse, error) {
	cacheKey := GetEmployeeOptionsKey(storeID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindAllByStore(ctx, storeID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested",
		zap.String("store_id", storeID),
		zap.String("employee_id", id),
	)
	empl, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	storeID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("store_id", storeID),
		zap.String("employee_id", id),
	)

	if !validRole(req.Role) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}
	if !validGender(req.Gender) {
		return EmployeeResponse{}, employeeerrors.ErrInvalidGender
	}

	empl, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = req.FullName
	empl.Email = req.Email
	empl.Role = req.Role
	empl.Gender = req.Gender
	if req.IsActive != nil {
		empl.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, storeID)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, storeID, id string) error {
	s.logger.Debug("delete employee requested",
		zap.String("store_id", storeID),
		zap.String("employee_id", id),
	)

	if err := s.repo.Delete(ctx, storeID, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, storeID)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, storeID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(storeID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       empl.ID.String(),
		StoreID:  empl.StoreID.String(),
		NIK:      empl.NIK,
		FullName: empl.FullName,
		Email:    empl.Email,
		Role:     empl.Role,
		Gender:   empl.Gender,
		IsActive: empl.IsActive,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
