package project

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
	users    *repository.UserRepository
	rooms    *repository.RoomRepository
	comments *repository.CommentRepository
}

func NewService(
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	rooms *repository.RoomRepository,
	comments *repository.CommentRepository,
) *Service {
	return &Service{
		projects: projects,
		users:    users,
		rooms:    rooms,
		comments: comments,
	}
}

// FindAccessible is the first gate for every project-scoped request.
// A project outside the caller's scope is reported as not found, never
// as forbidden.
func (s *Service) FindAccessible(ctx context.Context, user *domain.User, projectID int64) (*domain.Project, error) {
	p, err := s.projects.FindAccessible(ctx, user, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, user *domain.User, filter ListFilter) (*ListResponse, error) {
	repoFilter := repository.ProjectFilter{
		Status:      domain.ProjectStatus(filter.Status),
		Name:        strings.TrimSpace(filter.Name),
		DesignerIDs: filter.DesignerIDs,
		ClientIDs:   filter.ClientIDs,
	}

	projects, err := s.projects.ListAccessible(ctx, user, repoFilter)
	if err != nil {
		return nil, err
	}

	resp := &ListResponse{Projects: projects}
	if user.FirmID != nil {
		designers, err := s.users.ListFirmDesigners(ctx, *user.FirmID)
		if err != nil {
			return nil, err
		}
		clients, err := s.users.ListFirmClients(ctx, *user.FirmID)
		if err != nil {
			return nil, err
		}
		resp.FilterDesigners = toMemberSummaries(designers)
		resp.FilterClients = toMemberSummaries(clients)
	}
	return resp, nil
}

// Create persists the project together with all invited member rows; a
// failure on any join row rolls the whole thing back.
func (s *Service) Create(ctx context.Context, user *domain.User, req CreateProjectRequest) (*domain.Project, error) {
	if !user.IsDesignerRole() {
		return nil, ErrNoFirm
	}

	status := domain.ProjectStatus(req.Status)
	if status == "" {
		status = domain.ProjectNew
	}
	if !domain.ValidProjectStatus(status) {
		return nil, ErrInvalid
	}

	p := &domain.Project{
		FirmID: *user.FirmID,
		Name:   strings.TrimSpace(req.Name),
		Status: status,
	}
	if p.Name == "" {
		return nil, ErrInvalid
	}

	if err := s.projects.CreateWithMembers(ctx, p, dedupe(req.ClientIDs), dedupe(req.DesignerIDs)); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrInvalid
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Show(ctx context.Context, user *domain.User, projectID int64) (*ShowResponse, error) {
	p, err := s.FindAccessible(ctx, user, projectID)
	if err != nil {
		return nil, err
	}

	roomsData, total, err := s.BuildRoomsData(ctx, p)
	if err != nil {
		return nil, err
	}

	designerFor, err := s.projects.IsDesignerFor(ctx, user.ID, p.ID)
	if err != nil {
		return nil, err
	}
	clientFor, err := s.projects.IsClientFor(ctx, user.ID, p.ID)
	if err != nil {
		return nil, err
	}

	return &ShowResponse{
		Project:      *p,
		RoomsData:    roomsData,
		ProjectTotal: total,
		DesignerFor:  designerFor,
		ClientFor:    clientFor,
	}, nil
}

func toMemberSummaries(users []domain.User) []MemberSummary {
	out := make([]MemberSummary, 0, len(users))
	for _, u := range users {
		out = append(out, MemberSummary{ID: u.ID, Name: u.Name})
	}
	return out
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
