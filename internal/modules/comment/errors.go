package comment

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthor       = errors.New("you can only delete your own comments")
	ErrValidation      = errors.New("comment validation failed")
)
