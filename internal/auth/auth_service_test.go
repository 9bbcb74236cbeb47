package auth_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"go-shiftdesk/internal/auth"
	autherrors "go-shiftdesk/internal/auth/errors"
	"go-shiftdesk/internal/domain"
	"go-shiftdesk/internal/employee"
	employeeerrors "go-shiftdesk/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepository struct {
	findByEmailFn      func(ctx context.Context, email string) (*employee.Employee, error)
	findByIDAndStoreFn func(ctx context.Context, storeID, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(_ *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepository) Create(_ context.Context, _ *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepository) FindAllByStore(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByIDAndStore(ctx context.Context, storeID, id string) (*employee.Employee, error) {
	if f.findByIDAndStoreFn != nil {
		return f.findByIDAndStoreFn(ctx, storeID, id)
	}
	return nil, employeeerrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, employeeerrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) Update(_ context.Context, _ *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Delete(_ context.Context, _, _ string) error          { return nil }

type fakeRBACService struct {
	loadStorePolicyFn func(storeID string) error
}

func (f *fakeRBACService) LoadStorePolicy(storeID string) error {
	if f.loadStorePolicyFn != nil {
		return f.loadStorePolicyFn(storeID)
	}
	return nil
}

func (f *fakeRBACService) Enforce(_ domain.EnforceRequest) (bool, error) {
	return true, nil
}

func TestAuthService_Login(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	storeID := uuid.New()
	emplID := uuid.New()
	mockEmployee := &employee.Employee{
		ID:       emplID,
		StoreID:  storeID,
		NIK:      "EMP-000001",
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
		Password: string(pw),
		Role:     "cos",
		IsActive: true,
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findByEmailFn: func(_ context.Context, email string) (*employee.Employee, error) {
				assert.Equal(t, mockEmployee.Email, email)
				return mockEmployee, nil
			},
		}
		var loadedStore string
		rbacSvc := &fakeRBACService{
			loadStorePolicyFn: func(sID string) error {
				loadedStore = sID
				return nil
			},
		}

		service := auth.NewService(repo, rbacSvc)

		token, refreshToken, resp, err := service.Login(ctx, mockEmployee.Email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, mockEmployee.Email, resp.Email)
		assert.Equal(t, "cos", resp.Role)
		assert.Equal(t, storeID.String(), resp.StoreID)
		assert.Equal(t, storeID.String(), loadedStore)
	})

	t.Run("negative wrong password", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findByEmailFn: func(_ context.Context, _ string) (*employee.Employee, error) {
				return mockEmployee, nil
			},
		}
		service := auth.NewService(repo, &fakeRBACService{})

		_, _, _, err := service.Login(ctx, mockEmployee.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown email", func(t *testing.T) {
		service := auth.NewService(&fakeEmployeeRepository{}, &fakeRBACService{})

		_, _, _, err := service.Login(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative inactive employee", func(t *testing.T) {
		inactive := *mockEmployee
		inactive.IsActive = false
		repo := &fakeEmployeeRepository{
			findByEmailFn: func(_ context.Context, _ string) (*employee.Employee, error) {
				return &inactive, nil
			},
		}
		service := auth.NewService(repo, &fakeRBACService{})

		_, _, _, err := service.Login(ctx, mockEmployee.Email, password)
		assert.ErrorIs(t, err, autherrors.ErrEmployeeInactive)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	storeID := uuid.New()
	emplID := uuid.New()
	mockEmployee := &employee.Employee{
		ID:       emplID,
		StoreID:  storeID,
		Email:    "budi@example.com",
		Password: string(pw),
		Role:     "employee",
		IsActive: true,
	}

	repo := &fakeEmployeeRepository{
		findByEmailFn: func(_ context.Context, _ string) (*employee.Employee, error) {
			return mockEmployee, nil
		},
		findByIDAndStoreFn: func(_ context.Context, sID, id string) (*employee.Employee, error) {
			assert.Equal(t, storeID.String(), sID)
			assert.Equal(t, emplID.String(), id)
			return mockEmployee, nil
		},
	}
	service := auth.NewService(repo, &fakeRBACService{})

	t.Run("success round trip", func(t *testing.T) {
		_, refreshToken, _, err := service.Login(ctx, mockEmployee.Email, password)
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := service.RefreshToken(ctx, refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, mockEmployee.Email, resp.Email)
	})

	t.Run("negative garbage token", func(t *testing.T) {
		_, _, _, err := service.RefreshToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}
