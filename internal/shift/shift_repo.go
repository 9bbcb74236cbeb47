package shift

import (
	"context"

	"go-shiftdesk/internal/store"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, sh *Shift) error
	FindAllByStore(ctx context.Context, storeID string) ([]Shift, error)
	FindByIDAndStore(ctx context.Context, storeID, id string) (*Shift, error)
	Update(ctx context.Context, sh *Shift) error
	Delete(ctx context.Context, storeID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, sh *Shift) error {
	return r.db.WithContext(ctx).Create(sh).Error
}

func (r *repository) FindAllByStore(ctx context.Context, storeID string) ([]Shift, error) {
	var shifts []Shift
	err := r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Order("start_time asc").
		Find(&shifts).Error
	return shifts, err
}

func (r *repository) FindByIDAndStore(ctx context.Context, storeID, id string) (*Shift, error) {
	var sh Shift
	err := r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		First(&sh, "id = ?", id).Error
	return &sh, err
}

func (r *repository) Update(ctx context.Context, sh *Shift) error {
	return r.db.WithContext(ctx).Save(sh).Error
}

func (r *repository) Delete(ctx context.Context, storeID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Delete(&Shift{}, "id = ?", id).Error
}
