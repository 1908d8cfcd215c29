package repository

import (
	"context"

	"designhub/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) DB() *gorm.DB { return r.db }

// ProjectFilter narrows the accessible listing; zero values mean "no filter".
type ProjectFilter struct {
	Status      domain.ProjectStatus
	Name        string
	DesignerIDs []int64
	ClientIDs   []int64
}

// accessibleScope is the mandatory first gate: projects of the user's firm
// (when they are a designer) union projects they are an explicit client on.
func (r *ProjectRepository) accessibleScope(ctx context.Context, user *domain.User) *gorm.DB {
	clientProjects := r.db.Model(&domain.ProjectClient{}).
		Select("project_id").
		Where("client_id = ?", user.ID)

	q := r.db.WithContext(ctx).Model(&domain.Project{})
	if user.FirmID != nil {
		return q.Where("projects.firm_id = ? OR projects.id IN (?)", *user.FirmID, clientProjects)
	}
	return q.Where("projects.id IN (?)", clientProjects)
}

// FindAccessible returns gorm.ErrRecordNotFound both when the project does
// not exist and when it is outside the user's scope. Callers never learn
// which.
func (r *ProjectRepository) FindAccessible(ctx context.Context, user *domain.User, projectID int64) (*domain.Project, error) {
	var p domain.Project
	tx := r.accessibleScope(ctx, user).Where("projects.id = ?", projectID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProjectRepository) ListAccessible(ctx context.Context, user *domain.User, filter ProjectFilter) ([]domain.Project, error) {
	q := r.accessibleScope(ctx, user)

	if filter.Status != "" {
		q = q.Where("projects.status = ?", filter.Status)
	}
	if filter.Name != "" {
		q = q.Where("projects.name LIKE ?", "%"+filter.Name+"%")
	}
	// Member filters go through IN subqueries, not joins: a join would need
	// DISTINCT, and PostgreSQL rejects DISTINCT combined with the CASE
	// ordering below.
	if len(filter.DesignerIDs) > 0 {
		assigned := r.db.Model(&domain.ProjectDesigner{}).
			Select("project_id").
			Where("designer_id IN ?", filter.DesignerIDs)
		q = q.Where("projects.id IN (?)", assigned)
	}
	if len(filter.ClientIDs) > 0 {
		invited := r.db.Model(&domain.ProjectClient{}).
			Select("project_id").
			Where("client_id IN ?", filter.ClientIDs)
		q = q.Where("projects.id IN (?)", invited)
	}

	var projects []domain.Project
	tx := q.Order(`CASE projects.status
			WHEN 'waiting_for_approval' THEN 1
			WHEN 'new' THEN 2
			WHEN 'in_progress' THEN 3
			WHEN 'done' THEN 4
			ELSE 5
		END, projects.created_at DESC`).
		Find(&projects)
	return projects, tx.Error
}

// IsDesignerFor checks the explicit per-project assignment, not firm
// membership. A firm designer who was never invited onto the project is
// not a designer for it.
func (r *ProjectRepository) IsDesignerFor(ctx context.Context, userID, projectID int64) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.ProjectDesigner{}).
		Where("project_id = ? AND designer_id = ?", projectID, userID).
		Count(&count)
	return count > 0, tx.Error
}

func (r *ProjectRepository) IsClientFor(ctx context.Context, userID, projectID int64) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.ProjectClient{}).
		Where("project_id = ? AND client_id = ?", projectID, userID).
		Count(&count)
	return count > 0, tx.Error
}

// CreateWithMembers persists the project and all member join rows in one
// transaction; a failure on any row leaves nothing behind.
func (r *ProjectRepository) CreateWithMembers(ctx context.Context, p *domain.Project, clientIDs, designerIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for _, id := range clientIDs {
			if err := tx.Create(&domain.ProjectClient{ProjectID: p.ID, ClientID: id}).Error; err != nil {
				return err
			}
		}
		for _, id := range designerIDs {
			if err := tx.Create(&domain.ProjectDesigner{ProjectID: p.ID, DesignerID: id}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
