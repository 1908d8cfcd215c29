package room

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"designhub/internal/domain"
	"designhub/internal/repository"

	"gorm.io/gorm"
)

type planStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(name string) error
}

type Service struct {
	projects *repository.ProjectRepository
	rooms    *repository.RoomRepository
	store    planStore
}

func NewService(projects *repository.ProjectRepository, rooms *repository.RoomRepository, store planStore) *Service {
	return &Service{projects: projects, rooms: rooms, store: store}
}

// CreateWithPlans finds or creates the named room and attaches any uploaded
// plans. Uploading to an existing room is how plans get replaced, so hitting
// an existing name is not an error; Created reports which case happened.
func (s *Service) CreateWithPlans(ctx context.Context, user *domain.User, projectID int64, req CreateRoomRequest) (*domain.Room, bool, error) {
	p, err := s.projects.FindAccessible(ctx, user, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrProjectNotFound
		}
		return nil, false, err
	}

	designerFor, err := s.projects.IsDesignerFor(ctx, user.ID, p.ID)
	if err != nil {
		return nil, false, err
	}
	if !designerFor {
		return nil, false, ErrNotDesigner
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, false, ErrNameRequired
	}

	planPath, err := s.savePlan(req.Plan)
	if err != nil {
		return nil, false, err
	}
	planWithProductsPath, err := s.savePlan(req.PlanWithProducts)
	if err != nil {
		return nil, false, err
	}

	var room *domain.Room
	created := false
	err = s.rooms.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Room
		findErr := tx.Where("project_id = ? AND name = ?", p.ID, name).First(&existing).Error
		switch {
		case findErr == nil:
			room = &existing
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			room = &domain.Room{ProjectID: p.ID, Name: name, Status: domain.RoomNew}
			if err := tx.Create(room).Error; err != nil {
				return err
			}
			created = true
		default:
			return findErr
		}

		if planPath != nil {
			room.PlanPath = planPath
		}
		if planWithProductsPath != nil {
			room.PlanWithProductsPath = planWithProductsPath
		}
		if planPath != nil || planWithProductsPath != nil {
			return tx.Save(room).Error
		}
		return nil
	})
	if err != nil {
		s.discardPlan(planPath)
		s.discardPlan(planWithProductsPath)
		if repository.IsUniqueViolation(err) {
			return nil, false, ErrDuplicateName
		}
		return nil, false, err
	}

	return room, created, nil
}

func (s *Service) savePlan(fh *multipart.FileHeader) (*string, error) {
	if fh == nil {
		return nil, nil
	}
	path, err := s.store.Save(fh)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (s *Service) discardPlan(path *string) {
	if path != nil {
		_ = s.store.Remove(*path)
	}
}
