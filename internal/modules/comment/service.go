package comment

import (
	"context"
	"errors"
	"strings"

	"designhub/internal/domain"
	"designhub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	projects *repository.ProjectRepository
	comments *repository.CommentRepository
	finder   *Finder
}

func NewService(
	projects *repository.ProjectRepository,
	comments *repository.CommentRepository,
	finder *Finder,
) *Service {
	return &Service{projects: projects, comments: comments, finder: finder}
}

// resolveTarget runs both mandatory gates: project access, then commentable
// resolution plus ownership. A commentable that resolves but belongs to a
// different project looks exactly like a missing one.
func (s *Service) resolveTarget(ctx context.Context, user *domain.User, projectID int64, params CommentableParams) (*domain.Commentable, error) {
	_, err := s.projects.FindAccessible(ctx, user, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	commentable, err := s.finder.Resolve(ctx, params)
	if err != nil {
		return nil, err
	}
	if commentable == nil {
		return nil, ErrItemNotFound
	}

	ok, err := s.finder.BelongsToProject(ctx, commentable, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrItemNotFound
	}
	return commentable, nil
}

func (s *Service) List(ctx context.Context, user *domain.User, projectID int64, params CommentableParams) ([]CommentDTO, error) {
	commentable, err := s.resolveTarget(ctx, user, projectID, params)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListFor(ctx, commentable.Kind, commentable.EntityID())
	if err != nil {
		return nil, err
	}

	out := make([]CommentDTO, 0, len(comments))
	for i := range comments {
		out = append(out, toDTO(&comments[i], user))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, user *domain.User, projectID int64, params CommentableParams, req CreateCommentRequest) (*CommentDTO, error) {
	commentable, err := s.resolveTarget(ctx, user, projectID, params)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(req.Comment)
	if text == "" {
		return nil, ErrValidation
	}

	c := &domain.Comment{
		CommentableType: commentable.Kind,
		CommentableID:   commentable.EntityID(),
		UserID:          user.ID,
		Comment:         text,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	c.User = user

	dto := toDTO(c, user)
	return &dto, nil
}

// UpdateResolved toggles triage state. Any project member may do this;
// resolution is not an authorship privilege.
func (s *Service) UpdateResolved(ctx context.Context, user *domain.User, projectID int64, params CommentableParams, commentID int64, resolved bool) (*CommentDTO, error) {
	commentable, err := s.resolveTarget(ctx, user, projectID, params)
	if err != nil {
		return nil, err
	}

	c, err := s.comments.FindFor(ctx, commentable.Kind, commentable.EntityID(), commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	c.Resolved = resolved
	if err := s.comments.Save(ctx, c); err != nil {
		return nil, err
	}

	dto := toDTO(c, user)
	return &dto, nil
}

// Delete is author-only. Unlike the resolution gates above this one is an
// identity check on a visible comment, so it fails loudly as forbidden.
func (s *Service) Delete(ctx context.Context, user *domain.User, projectID int64, params CommentableParams, commentID int64) error {
	commentable, err := s.resolveTarget(ctx, user, projectID, params)
	if err != nil {
		return err
	}

	c, err := s.comments.FindFor(ctx, commentable.Kind, commentable.EntityID(), commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if c.UserID != user.ID {
		return ErrNotAuthor
	}
	return s.comments.Delete(ctx, c.ID)
}
