package product

import (
	"context"
	"errors"

	"designhub/internal/domain"
	"designhub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	projects *repository.ProjectRepository
	rooms    *repository.RoomRepository
	products *repository.ProductRepository
}

func NewService(
	projects *repository.ProjectRepository,
	rooms *repository.RoomRepository,
	products *repository.ProductRepository,
) *Service {
	return &Service{projects: projects, rooms: rooms, products: products}
}

func (s *Service) findAccessible(ctx context.Context, user *domain.User, projectID int64) (*domain.Project, error) {
	p, err := s.projects.FindAccessible(ctx, user, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, user *domain.User, projectID int64, req CreateProductRequest) (*domain.Product, error) {
	p, err := s.findAccessible(ctx, user, projectID)
	if err != nil {
		return nil, err
	}

	designerFor, err := s.projects.IsDesignerFor(ctx, user.ID, p.ID)
	if err != nil {
		return nil, err
	}
	if !designerFor {
		return nil, ErrNotDesigner
	}

	// Room lookup is scoped to the authorized project; a foreign room ID
	// resolves as not found.
	room, err := s.rooms.FindByID(ctx, p.ID, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	product := &domain.Product{
		RoomID:   room.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Link:     req.Link,
		Status:   domain.ProductPending,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateStatus applies the role-gated transition. Requesting the current
// status is a no-op success. Reachability from the current status is not
// enforced; the gate is purely role and target based.
func (s *Service) UpdateStatus(ctx context.Context, user *domain.User, projectID, productID int64, requested string) (*domain.Product, error) {
	p, err := s.findAccessible(ctx, user, projectID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindInProject(ctx, p.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	newStatus := domain.ProductStatus(requested)
	if !domain.ValidProductStatus(newStatus) || !KnownTarget(newStatus) {
		return nil, ErrInvalidStatus
	}

	designerFor, err := s.projects.IsDesignerFor(ctx, user.ID, p.ID)
	if err != nil {
		return nil, err
	}
	clientFor, err := s.projects.IsClientFor(ctx, user.ID, p.ID)
	if err != nil {
		return nil, err
	}

	policy := StatusTransitionPolicy{DesignerFor: designerFor, ClientFor: clientFor}
	if !policy.Allowed(newStatus) {
		return nil, ErrRoleNotPermitted
	}

	if product.Status == newStatus {
		return product, nil
	}

	if err := s.products.UpdateStatus(ctx, product.ID, newStatus); err != nil {
		return nil, ErrValidation
	}
	product.Status = newStatus
	return product, nil
}
