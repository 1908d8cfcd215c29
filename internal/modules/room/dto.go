package room

import "mime/multipart"

// CreateRoomRequest is bound from multipart form data because rooms can
// carry plan uploads on creation.
type CreateRoomRequest struct {
	Name             string                `form:"name"`
	Plan             *multipart.FileHeader `form:"plan"`
	PlanWithProducts *multipart.FileHeader `form:"plan_with_products"`
}

type RoomResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Created bool   `json:"created"`
}
