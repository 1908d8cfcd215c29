package project

import (
	"context"

	"designhub/internal/domain"
)

// DefaultRoomNames render as placeholders even before a room row exists,
// in this fixed order; custom rooms follow in creation order.
var DefaultRoomNames = []string{"Living room", "Kitchen", "Master bedroom", "Master bathroom"}

// BuildRoomsData assembles the per-room view models and the project total.
func (s *Service) BuildRoomsData(ctx context.Context, p *domain.Project) ([]RoomViewModel, float64, error) {
	rooms, err := s.rooms.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, 0, err
	}

	byName := make(map[string]*domain.Room, len(rooms))
	roomIDs := make([]int64, 0, len(rooms))
	productIDs := make([]int64, 0)
	pendingIDs := make([]int64, 0)
	for i := range rooms {
		r := &rooms[i]
		byName[r.Name] = r
		roomIDs = append(roomIDs, r.ID)
		for _, pr := range r.Products {
			productIDs = append(productIDs, pr.ID)
		}
		for _, pp := range r.PendingProducts {
			pendingIDs = append(pendingIDs, pp.ID)
		}
	}

	roomCounts, err := s.comments.CountByEntity(ctx, domain.CommentableRoom, roomIDs)
	if err != nil {
		return nil, 0, err
	}
	productCounts, err := s.comments.CountByEntity(ctx, domain.CommentableProduct, productIDs)
	if err != nil {
		return nil, 0, err
	}
	pendingCounts, err := s.comments.CountByEntity(ctx, domain.CommentablePendingProduct, pendingIDs)
	if err != nil {
		return nil, 0, err
	}

	names := make([]string, 0, len(DefaultRoomNames)+len(rooms))
	seen := make(map[string]bool, len(DefaultRoomNames)+len(rooms))
	for _, name := range DefaultRoomNames {
		names = append(names, name)
		seen[name] = true
	}
	for i := range rooms {
		if !seen[rooms[i].Name] {
			names = append(names, rooms[i].Name)
			seen[rooms[i].Name] = true
		}
	}

	out := make([]RoomViewModel, 0, len(names))
	var projectTotal float64
	for _, name := range names {
		vm := buildRoomViewModel(name, byName[name], roomCounts, productCounts, pendingCounts)
		projectTotal += vm.Total
		out = append(out, vm)
	}
	return out, projectTotal, nil
}

func buildRoomViewModel(
	name string,
	room *domain.Room,
	roomCounts, productCounts, pendingCounts map[int64]int64,
) RoomViewModel {
	if room == nil {
		return RoomViewModel{
			Name:            name,
			Products:        []ProductViewModel{},
			PendingProducts: []PendingProductViewModel{},
		}
	}

	products := make([]ProductViewModel, 0, len(room.Products))
	for _, p := range room.Products {
		products = append(products, ProductViewModel{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price,
			Link:          p.Link,
			Quantity:      p.Quantity,
			Status:        string(p.Status),
			CommentsCount: productCounts[p.ID],
		})
	}

	pendings := make([]PendingProductViewModel, 0, len(room.PendingProducts))
	for _, pp := range room.PendingProducts {
		options := make([]PendingProductOptionViewModel, 0, len(pp.Options))
		for _, opt := range pp.Options {
			options = append(options, PendingProductOptionViewModel{
				ID:    opt.ID,
				Name:  opt.Name,
				Price: opt.Price,
				Link:  opt.Link,
			})
		}
		pendings = append(pendings, PendingProductViewModel{
			ID:            pp.ID,
			Name:          pp.Name,
			Quantity:      pp.Quantity,
			CommentsCount: pendingCounts[pp.ID],
			Options:       options,
		})
	}

	roomID := room.ID
	return RoomViewModel{
		Name:                name,
		RoomID:              &roomID,
		CommentsCount:       roomCounts[room.ID],
		Total:               room.TotalCost(),
		PlanURL:             planURL(room.PlanPath),
		PlanWithProductsURL: planURL(room.PlanWithProductsPath),
		Products:            products,
		PendingProducts:     pendings,
	}
}

func planURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	url := "/uploads/" + *path
	return &url
}
