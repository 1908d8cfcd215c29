package domain

import "time"

type ProductStatus string

const (
	ProductPending   ProductStatus = "pending"
	ProductApproved  ProductStatus = "approved"
	ProductRejected  ProductStatus = "rejected"
	ProductOrdered   ProductStatus = "ordered"
	ProductDelivered ProductStatus = "delivered"
)

func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductPending, ProductApproved, ProductRejected, ProductOrdered, ProductDelivered:
		return true
	}
	return false
}

type Product struct {
	ID        int64         `json:"id"`
	RoomID    int64         `json:"room_id"`
	Name      string        `json:"name" validate:"required,max=255"`
	Price     *float64      `json:"price" validate:"omitempty,gte=0"`
	Quantity  *int          `json:"quantity" validate:"omitempty,gt=0"`
	Link      string        `json:"link,omitempty" validate:"max=2048"`
	Status    ProductStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (p *Product) LineTotal() float64 {
	price := 0.0
	if p.Price != nil {
		price = *p.Price
	}
	qty := 1
	if p.Quantity != nil {
		qty = *p.Quantity
	}
	return price * float64(qty)
}

// PendingProduct is an undecided purchase: the client picks one of its
// options, which converts it into a concrete Product.
type PendingProduct struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	Name      string    `json:"name" validate:"required,max=255"`
	Quantity  *int      `json:"quantity" validate:"omitempty,gt=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Options []PendingProductOption `json:"options,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type PendingProductOption struct {
	ID               int64     `json:"id"`
	PendingProductID int64     `json:"pending_product_id"`
	Name             string    `json:"name" validate:"required,max=255"`
	Price            *float64  `json:"price" validate:"omitempty,gte=0"`
	Link             string    `json:"link,omitempty" validate:"max=2048"`
	CreatedAt        time.Time `json:"created_at"`
}
