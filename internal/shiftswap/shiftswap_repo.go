package shiftswap

import (
	"context"
	"database/sql"
	"time"

	"go-shiftdesk/internal/approval"
	"go-shiftdesk/internal/store"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shiftswap_repo.go -destination=mock/shiftswap_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *SwapRequest) error
	FindAllByStore(ctx context.Context, storeID string) ([]SwapRequest, error)
	FindByIDAndStore(ctx context.Context, storeID, id string) (*SwapRequest, error)
	Update(ctx context.Context, s *SwapRequest) error
	// SetPartnerResponse flips the partner track only while the request is
	// still open on both tracks. Returns the number of rows changed; zero
	// means the request moved under the caller's feet.
	SetPartnerResponse(ctx context.Context, storeID, id string, partnerStatus string, reason *string, respondedAt time.Time) (int64, error)
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

// WithTx scopes the repository to the caller's transaction lifecycle.
// The gorm operations still run on their own connection, outside tx; the
// bound tx only decides whether the outbox insert commits alongside the
// decision, not whether these updates do.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, s *SwapRequest) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAllByStore(ctx context.Context, storeID string) ([]SwapRequest, error) {
	var swaps []SwapRequest
	err := r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Preload("Requester").
		Preload("Partner").
		Order("created_at desc").
		Find(&swaps).Error
	return swaps, err
}

func (r *repository) FindByIDAndStore(ctx context.Context, storeID, id string) (*SwapRequest, error) {
	var s SwapRequest
	err := r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Preload("Requester").
		Preload("Partner").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *SwapRequest) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) SetPartnerResponse(ctx context.Context, storeID, id string, partnerStatus string, reason *string, respondedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE swap_requests
		SET partner_status = ?, decline_reason = ?, partner_responded_at = ?, updated_at = NOW()
		WHERE id = ? AND store_id = ? AND status = ? AND partner_status = ?`,
		partnerStatus, reason, respondedAt,
		id, storeID, string(approval.StatusPending), string(approval.PartnerWaiting),
	)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, storeID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Delete(&SwapRequest{}, "id = ?", id).Error
}

func (r *repository) DeleteAllByStore(ctx context.Context, storeID string) error {
	return r.db.WithContext(ctx).
		Scopes(store.Scope(storeID)).
		Where("1 = 1").
		Delete(&SwapRequest{}).Error
}
