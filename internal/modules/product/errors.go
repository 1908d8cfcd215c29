package product

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrRoleNotPermitted = errors.New("role not permitted for this status")
	ErrNotDesigner      = errors.New("only designers can add products")
	ErrValidation       = errors.New("product validation failed")
)
