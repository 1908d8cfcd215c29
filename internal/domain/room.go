package domain

import "time"

type RoomStatus string

const (
	RoomNew        RoomStatus = "new"
	RoomInProgress RoomStatus = "in_progress"
	RoomReview     RoomStatus = "review"
	RoomCompleted  RoomStatus = "completed"
)

// Room groups line-items inside a project. Name is unique within the
// project; the two plan attachments are optional uploaded files referenced
// by their stored path.
type Room struct {
	ID                   int64      `json:"id"`
	ProjectID            int64      `json:"project_id" gorm:"uniqueIndex:idx_rooms_project_name"`
	Name                 string     `json:"name" gorm:"uniqueIndex:idx_rooms_project_name" validate:"required,max=100"`
	Status               RoomStatus `json:"status"`
	PlanPath             *string    `json:"plan_path,omitempty"`
	PlanWithProductsPath *string    `json:"plan_with_products_path,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	Products        []Product        `json:"products,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	PendingProducts []PendingProduct `json:"pending_products,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// TotalCost is the room subtotal: nil prices count as 0, nil quantities as 1.
func (r *Room) TotalCost() float64 {
	var total float64
	for _, p := range r.Products {
		total += p.LineTotal()
	}
	return total
}
