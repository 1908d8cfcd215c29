package domain

import "time"

// CommentableKind tags the closed set of entities a comment can attach to.
type CommentableKind string

const (
	CommentableRoom           CommentableKind = "Room"
	CommentableProduct        CommentableKind = "Product"
	CommentablePendingProduct CommentableKind = "PendingProduct"
)

type Comment struct {
	ID              int64           `json:"id"`
	CommentableType CommentableKind `json:"commentable_type" gorm:"index:idx_comments_commentable"`
	CommentableID   int64           `json:"commentable_id" gorm:"index:idx_comments_commentable"`
	UserID          int64           `json:"user_id"`
	User            *User           `json:"-" gorm:"foreignKey:UserID"`
	Comment         string          `json:"comment" validate:"required,max=2000"`
	Resolved        bool            `json:"resolved"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Commentable is a tagged union over the three entity kinds that carry
// comment threads. Exactly one variant pointer is non-nil, matching Kind.
type Commentable struct {
	Kind           CommentableKind
	Room           *Room
	Product        *Product
	PendingProduct *PendingProduct
}

// EntityID returns the primary key of whichever variant is set.
func (c Commentable) EntityID() int64 {
	switch c.Kind {
	case CommentableRoom:
		return c.Room.ID
	case CommentableProduct:
		return c.Product.ID
	case CommentablePendingProduct:
		return c.PendingProduct.ID
	}
	return 0
}
