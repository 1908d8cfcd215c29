package repository

import (
	"context"

	"designhub/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) DB() *gorm.DB { return r.db }

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Save(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// GetByID is the unscoped lookup used by the commentable resolver; callers
// must still verify project ownership afterwards.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).First(&room, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

// FindByID scopes the lookup to the project so a guessed room ID from
// another project resolves as not found.
func (r *RoomRepository) FindByID(ctx context.Context, projectID, roomID int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, roomID).
		First(&room)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) FindByName(ctx context.Context, projectID int64, name string) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).
		Where("project_id = ? AND name = ?", projectID, name).
		First(&room)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

// ListByProject returns rooms in creation order with products and pending
// products (plus their options) preloaded for the aggregation view.
func (r *RoomRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("products.created_at") }).
		Preload("PendingProducts", func(db *gorm.DB) *gorm.DB { return db.Order("pending_products.created_at") }).
		Preload("PendingProducts.Options", func(db *gorm.DB) *gorm.DB { return db.Order("pending_product_options.id") }).
		Where("project_id = ?", projectID).
		Order("created_at").
		Find(&rooms)
	return rooms, tx.Error
}
