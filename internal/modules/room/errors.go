package room

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNameRequired    = errors.New("room name is required")
	ErrNotDesigner     = errors.New("only designers can manage rooms")
	ErrDuplicateName   = errors.New("room name already exists in this project")
)
