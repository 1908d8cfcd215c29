package pendingproduct

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"designhub/internal/domain"
	"designhub/internal/pkg/validator"
	"designhub/internal/repository"

	"gorm.io/gorm"
)

// defaultRoomName is where pending products land when no room is named.
const defaultRoomName = "Default"

type Service struct {
	projects *repository.ProjectRepository
	rooms    *repository.RoomRepository
	pendings *repository.PendingProductRepository
}

func NewService(
	projects *repository.ProjectRepository,
	rooms *repository.RoomRepository,
	pendings *repository.PendingProductRepository,
) *Service {
	return &Service{projects: projects, rooms: rooms, pendings: pendings}
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

// Create builds the pending product with its options in one shot. The
// target room is addressed by name and lazily created for designers.
func (s *Service) Create(ctx context.Context, user *domain.User, projectID int64, req CreateRequest) (*domain.PendingProduct, error) {
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

	roomName := strings.TrimSpace(req.RoomName)
	if roomName == "" {
		roomName = defaultRoomName
	}
	room, err := s.rooms.FindByName(ctx, p.ID, roomName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		room = &domain.Room{ProjectID: p.ID, Name: roomName, Status: domain.RoomNew}
		err = s.rooms.Create(ctx, room)
	}
	if err != nil {
		return nil, err
	}

	pp := &domain.PendingProduct{
		RoomID:   room.ID,
		Name:     strings.TrimSpace(req.Name),
		Quantity: req.Quantity,
	}
	for _, opt := range req.Options {
		// Binding only rejects absent names; a whitespace-only one still
		// gets through and must not be stored as empty.
		optName := strings.TrimSpace(opt.Name)
		if optName == "" {
			return nil, ErrValidation
		}
		pp.Options = append(pp.Options, domain.PendingProductOption{
			Name:  optName,
			Price: opt.Price,
			Link:  opt.Link,
		})
	}

	if fieldErrs := validator.Validate(pp); fieldErrs != nil {
		return nil, ErrValidation
	}

	// gorm persists the options together with the parent in one transaction.
	if err := s.pendings.Create(ctx, pp); err != nil {
		return nil, err
	}
	return pp, nil
}

// SelectOption converts the chosen option into a concrete product and
// destroys the pending product with everything hanging off it, as one
// atomic unit. There is no restore path afterwards.
func (s *Service) SelectOption(ctx context.Context, user *domain.User, projectID, pendingProductID, optionID int64) (*domain.Product, error) {
	p, err := s.findAccessible(ctx, user, projectID)
	if err != nil {
		return nil, err
	}

	pp, err := s.pendings.FindInProject(ctx, p.ID, pendingProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	option, err := s.pendings.FindOption(ctx, pp.ID, optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	quantity := 1
	if pp.Quantity != nil {
		quantity = *pp.Quantity
	}
	product := &domain.Product{
		RoomID:   pp.RoomID,
		Name:     fmt.Sprintf("%s - %s", pp.Name, option.Name),
		Link:     option.Link,
		Price:    option.Price,
		Quantity: &quantity,
		Status:   domain.ProductPending,
	}

	if fieldErrs := validator.Validate(product); fieldErrs != nil {
		return nil, ErrValidation
	}

	err = s.pendings.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if err := repository.DeleteCommentsFor(tx, domain.CommentablePendingProduct, pp.ID); err != nil {
			return err
		}
		if err := tx.Where("pending_product_id = ?", pp.ID).
			Delete(&domain.PendingProductOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.PendingProduct{}, pp.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}
