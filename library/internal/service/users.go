package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Astemirdum/library-desk/library/internal/model"
	"github.com/Astemirdum/library-desk/pkg/auth"
)

// EnsureUser returns the caller's user record, creating it on first sight.
func (s *Service) EnsureUser(ctx context.Context, ident auth.Identity) (model.User, error) {
	return ensureUser(ctx, s.repo, ident)
}

func (s *Service) GetUser(ctx context.Context, id string) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) CreateUser(ctx context.Context, req model.UserRequest) (model.User, error) {
	req = normalizeUser(req)
	return s.repo.CreateUser(ctx, model.User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
}

func (s *Service) UpdateUser(ctx context.Context, id string, req model.UserRequest) (model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	return s.repo.UpdateUser(ctx, id, req)
}

func normalizeUser(req model.UserRequest) model.UserRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Role == "" {
		req.Role = model.RoleUser
	}
	return req
}
