package leaverequest

import (
	"context"
	"database/sql"

	"go-shiftdesk/internal/store"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leaverequest_repo.go -destination=mock/leaverequest_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindAllByStore(ctx context.Context, storeID string) ([]LeaveRequest, error)
	FindByIDAndStore(ctx context.Context, storeID, id string) (*LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	Delete(ctx context.Context, storeID, id string) error
	DeleteAllByStore(ctx context.Context, storeID string) error
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAllByStore(ctx context.Context, storeID string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Preload("Employee").
		Order("created_at desc").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByIDAndStore(ctx context.Context, storeID, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, storeID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Delete(&LeaveRequest{}, "id = ?", id).Error
}

func (r *repository) DeleteAllByStore(ctx context.Context, storeID string) error {
	return r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Where("1 = 1").
		Delete(&LeaveRequest{}).Error
}
