package project

import "errors"

var (
	ErrNotFound = errors.New("project not found")
	ErrNoFirm   = errors.New("user does not belong to a firm")
	ErrInvalid  = errors.New("invalid project attributes")
)
