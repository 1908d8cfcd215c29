package pendingproduct

type OptionInput struct {
	Name  string   `json:"name" binding:"required,max=255"`
	Price *float64 `json:"price" binding:"omitempty,gte=0"`
	Link  string   `json:"link" binding:"omitempty,max=2048"`
}

type CreateRequest struct {
	RoomName string        `json:"room_name"`
	Name     string        `json:"name" binding:"required,max=255"`
	Quantity *int          `json:"quantity" binding:"omitempty,gt=0"`
	Options  []OptionInput `json:"options" binding:"required,min=1,dive"`
}
