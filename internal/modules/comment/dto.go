package comment

import (
	"time"

	"designhub/internal/domain"
)

// maxCommentChars mirrors the max tag below; the handler uses it to tell a
// too-long comment apart from a blank one when binding fails.
const maxCommentChars = 2000

type CreateCommentRequest struct {
	Comment string `json:"comment" binding:"required,max=2000"`
}

type UpdateCommentRequest struct {
	Resolved *bool `json:"resolved" binding:"required"`
}

type CommentDTO struct {
	ID        int64  `json:"id"`
	Comment   string `json:"comment"`
	Resolved  bool   `json:"resolved"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	CreatedAt string `json:"created_at"`
	CanDelete bool   `json:"can_delete"`
}

func toDTO(c *domain.Comment, currentUser *domain.User) CommentDTO {
	userName := ""
	if c.User != nil {
		userName = c.User.Name
	}
	return CommentDTO{
		ID:        c.ID,
		Comment:   c.Comment,
		Resolved:  c.Resolved,
		UserID:    c.UserID,
		UserName:  userName,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		CanDelete: c.UserID == currentUser.ID,
	}
}
