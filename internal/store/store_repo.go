package store

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=store_repo.go -destination=mock/store_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *Store) error
	FindAll(ctx context.Context) ([]Store, error)
	FindByID(ctx context.Context, id string) (*Store, error)
	Update(ctx context.Context, s *Store) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Store) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Store, error) {
	var stores []Store
	err := r.db.WithContext(ctx).Order("code asc").Find(&stores).Error
	return stores, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Store, error) {
	var s Store
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Store) error {
	return r.db.WithContext(ctx).Save(s).Error
}
