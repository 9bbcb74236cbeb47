package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-shiftdesk/internal/auth/errors"
	"go-shiftdesk/internal/employee"
	"go-shiftdesk/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, storeID, employeeID string) (*AuthResponse, error)
}

type service struct {
	employeeRepo employee.Repository
	rbac         rbac.Service
}

func NewService(employeeRepo employee.Repository, rbac rbac.Service) Service {
	return &service{employeeRepo: employeeRepo, rbac: rbac}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	empl, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !empl.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrEmployeeInactive
	}

	if err := s.rbac.LoadStorePolicy(empl.StoreID.String()); err != nil {
		return "", "", AuthResponse{}, err
	}

	accessToken, err := s.generateToken(empl, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	refreshToken, err := s.generateToken(empl, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	return accessToken, refreshToken, mapToAuthResponse(empl), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	employeeID, _ := claims["employee_id"].(string)
	storeID, _ := claims["store_id"].(string)
	if employeeID == "" || storeID == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	empl, err := s.employeeRepo.FindByIDAndStore(ctx, storeID, employeeID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	if !empl.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrEmployeeInactive
	}

	newAccess, err := s.generateToken(empl, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, err
	}
	newRefresh, err := s.generateToken(empl, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	return newAccess, newRefresh, mapToAuthResponse(empl), nil
}

func (s *service) GetMe(ctx context.Context, storeID, employeeID string) (*AuthResponse, error) {
	empl, err := s.employeeRepo.FindByIDAndStore(ctx, storeID, employeeID)
	if err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}

	resp := mapToAuthResponse(empl)
	return &resp, nil
}

// The employee record doubles as the login account, so user_id and
// employee_id carry the same value. Middleware expects both claims.
func (s *service) generateToken(empl *employee.Employee, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     empl.ID.String(),
		"employee_id": empl.ID.String(),
		"store_id":    empl.StoreID.String(),
		"role":        empl.Role,
		"exp":         time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthResponse(empl *employee.Employee) AuthResponse {
	return AuthResponse{
		ID:       empl.ID.String(),
		StoreID:  empl.StoreID.String(),
		NIK:      empl.NIK,
		Email:    empl.Email,
		FullName: empl.FullName,
		Role:     empl.Role,
	}
}
