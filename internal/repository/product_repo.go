package repository

import (
	"context"

	"designhub/internal/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) DB() *gorm.DB { return r.db }

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID is the unscoped lookup used by the commentable resolver; callers
// must still verify project ownership afterwards.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	tx := r.db.WithContext(ctx).First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// FindInProject re-anchors the product lookup to the already-authorized
// project through its room.
func (r *ProductRepository) FindInProject(ctx context.Context, projectID, productID int64) (*domain.Product, error) {
	var p domain.Product
	tx := r.db.WithContext(ctx).
		Joins("JOIN rooms ON rooms.id = products.room_id").
		Where("rooms.project_id = ? AND products.id = ?", projectID, productID).
		First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProductRepository) UpdateStatus(ctx context.Context, productID int64, status domain.ProductStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", productID).
		Update("status", status).Error
}
