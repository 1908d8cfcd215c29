package repository

import (
	"context"

	"designhub/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) DB() *gorm.DB { return r.db }

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepository) Save(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Comment{}, id).Error
}

// ListFor returns the thread newest-first with authors preloaded.
func (r *CommentRepository) ListFor(ctx context.Context, kind domain.CommentableKind, entityID int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	tx := r.db.WithContext(ctx).
		Preload("User").
		Where("commentable_type = ? AND commentable_id = ?", kind, entityID).
		Order("created_at DESC, id DESC").
		Find(&comments)
	return comments, tx.Error
}

// FindFor scopes a single comment to its thread so IDs from other
// commentables resolve as not found.
func (r *CommentRepository) FindFor(ctx context.Context, kind domain.CommentableKind, entityID, commentID int64) (*domain.Comment, error) {
	var c domain.Comment
	tx := r.db.WithContext(ctx).
		Preload("User").
		Where("commentable_type = ? AND commentable_id = ? AND id = ?", kind, entityID, commentID).
		First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

// CountByEntity returns live comment counts for many entities of one kind.
func (r *CommentRepository) CountByEntity(ctx context.Context, kind domain.CommentableKind, entityIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(entityIDs))
	if len(entityIDs) == 0 {
		return counts, nil
	}

	type row struct {
		CommentableID int64
		N             int64
	}
	var rows []row
	tx := r.db.WithContext(ctx).Model(&domain.Comment{}).
		Select("commentable_id, COUNT(*) AS n").
		Where("commentable_type = ? AND commentable_id IN ?", kind, entityIDs).
		Group("commentable_id").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, r := range rows {
		counts[r.CommentableID] = r.N
	}
	return counts, nil
}

// DeleteCommentsFor removes a whole thread inside an existing transaction,
// used when the owning entity is destroyed.
func DeleteCommentsFor(tx *gorm.DB, kind domain.CommentableKind, entityID int64) error {
	return tx.Where("commentable_type = ? AND commentable_id = ?", kind, entityID).
		Delete(&domain.Comment{}).Error
}
