package repository

import (
	"context"

	"designhub/internal/domain"

	"gorm.io/gorm"
)

type PendingProductRepository struct {
	db *gorm.DB
}

func NewPendingProductRepository(db *gorm.DB) *PendingProductRepository {
	return &PendingProductRepository{db: db}
}

func (r *PendingProductRepository) DB() *gorm.DB { return r.db }

func (r *PendingProductRepository) Create(ctx context.Context, pp *domain.PendingProduct) error {
	return r.db.WithContext(ctx).Create(pp).Error
}

// GetByID is the unscoped lookup used by the commentable resolver; callers
// must still verify project ownership afterwards.
func (r *PendingProductRepository) GetByID(ctx context.Context, id int64) (*domain.PendingProduct, error) {
	var pp domain.PendingProduct
	tx := r.db.WithContext(ctx).First(&pp, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &pp, nil
}

func (r *PendingProductRepository) FindInProject(ctx context.Context, projectID, pendingProductID int64) (*domain.PendingProduct, error) {
	var pp domain.PendingProduct
	tx := r.db.WithContext(ctx).
		Preload("Options").
		Joins("JOIN rooms ON rooms.id = pending_products.room_id").
		Where("rooms.project_id = ? AND pending_products.id = ?", projectID, pendingProductID).
		First(&pp)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &pp, nil
}

// FindOption only resolves options that belong to the given pending
// product; the pairing is checked by lookup, never trusted from params.
func (r *PendingProductRepository) FindOption(ctx context.Context, pendingProductID, optionID int64) (*domain.PendingProductOption, error) {
	var opt domain.PendingProductOption
	tx := r.db.WithContext(ctx).
		Where("pending_product_id = ? AND id = ?", pendingProductID, optionID).
		First(&opt)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &opt, nil
}
