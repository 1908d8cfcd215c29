package pendingproduct

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotFound        = errors.New("pending product not found")
	ErrOptionNotFound  = errors.New("option not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrNotDesigner     = errors.New("only designers can add pending products")
	ErrValidation      = errors.New("pending product validation failed")
)
