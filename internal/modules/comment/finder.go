package comment

import (
	"context"
	"errors"

	"designhub/internal/domain"
	"designhub/internal/repository"

	"gorm.io/gorm"
)

// CommentableParams carries the identifying keys a comment request may
// supply. Exactly one is expected; when several are present they are
// checked in fixed priority order: product, pending product, room.
type CommentableParams struct {
	ProductID        *int64
	PendingProductID *int64
	RoomID           *int64
}

// Finder resolves an opaque (kind, id) pair into the Commentable sum type.
type Finder struct {
	rooms    *repository.RoomRepository
	products *repository.ProductRepository
	pendings *repository.PendingProductRepository
}

func NewFinder(
	rooms *repository.RoomRepository,
	products *repository.ProductRepository,
	pendings *repository.PendingProductRepository,
) *Finder {
	return &Finder{rooms: rooms, products: products, pendings: pendings}
}

// Resolve returns nil when no key is present or the referenced entity does
// not exist. It never checks project ownership; that is BelongsToProject.
func (f *Finder) Resolve(ctx context.Context, params CommentableParams) (*domain.Commentable, error) {
	switch {
	case params.ProductID != nil:
		p, err := f.products.GetByID(ctx, *params.ProductID)
		if err != nil {
			return nil, ignoreNotFound(err)
		}
		return &domain.Commentable{Kind: domain.CommentableProduct, Product: p}, nil
	case params.PendingProductID != nil:
		pp, err := f.pendings.GetByID(ctx, *params.PendingProductID)
		if err != nil {
			return nil, ignoreNotFound(err)
		}
		return &domain.Commentable{Kind: domain.CommentablePendingProduct, PendingProduct: pp}, nil
	case params.RoomID != nil:
		r, err := f.rooms.GetByID(ctx, *params.RoomID)
		if err != nil {
			return nil, ignoreNotFound(err)
		}
		return &domain.Commentable{Kind: domain.CommentableRoom, Room: r}, nil
	}
	return nil, nil
}

// BelongsToProject walks the ancestor chain back to the already-authorized
// project. Products and pending products go through their room; rooms are
// checked directly. Anything else is categorically rejected.
func (f *Finder) BelongsToProject(ctx context.Context, c *domain.Commentable, projectID int64) (bool, error) {
	switch c.Kind {
	case domain.CommentableProduct:
		return f.roomInProject(ctx, c.Product.RoomID, projectID)
	case domain.CommentablePendingProduct:
		return f.roomInProject(ctx, c.PendingProduct.RoomID, projectID)
	case domain.CommentableRoom:
		return c.Room.ProjectID == projectID, nil
	}
	return false, nil
}

func (f *Finder) roomInProject(ctx context.Context, roomID, projectID int64) (bool, error) {
	room, err := f.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return room.ProjectID == projectID, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
