package repository

import (
	"context"
	"strings"

	"designhub/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) DB() *gorm.DB { return r.db }

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count)
	return count > 0, tx.Error
}

// ListFirmDesigners returns users whose single-firm membership points at the firm.
func (r *UserRepository) ListFirmDesigners(ctx context.Context, firmID int64) ([]domain.User, error) {
	var users []domain.User
	tx := r.db.WithContext(ctx).
		Where("firm_id = ?", firmID).
		Order("name").
		Find(&users)
	return users, tx.Error
}

// ListFirmClients returns users joined to the firm through firms_clients rows.
func (r *UserRepository) ListFirmClients(ctx context.Context, firmID int64) ([]domain.User, error) {
	var users []domain.User
	tx := r.db.WithContext(ctx).
		Joins("JOIN firms_clients ON firms_clients.client_id = users.id").
		Where("firms_clients.firm_id = ?", firmID).
		Order("users.name").
		Find(&users)
	return users, tx.Error
}
