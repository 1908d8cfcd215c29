package product

type CreateProductRequest struct {
	RoomID   int64    `json:"room_id" binding:"required"`
	Name     string   `json:"name" binding:"required,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,gt=0"`
	Link     string   `json:"link" binding:"omitempty,max=2048"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
