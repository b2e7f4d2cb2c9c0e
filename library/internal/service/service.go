package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/model"
	"github.com/Astemirdum/library-desk/library/internal/repository"
	"github.com/Astemirdum/library-desk/library/internal/rules"
	"github.com/Astemirdum/library-desk/pkg/auth"
	"github.com/Astemirdum/library-desk/pkg/kafka"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	pub  Publisher
	now  func() time.Time
	rnd  func() int
}

type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.pub = p
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithRand(rnd func() int) Option {
	return func(s *Service) {
		s.rnd = rnd
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
		pub:  NopPublisher{},
		now:  time.Now,
		rnd:  func() int { return rand.Intn(1000) }, //nolint:gosec
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today is the current calendar day in UTC.
func (s *Service) today() model.Date {
	return model.DateOf(s.now().UTC())
}

func (s *Service) publish(ctx context.Context, ev kafka.Event) {
	ev.OccurredAt = s.now().UTC()
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.log.Warn("publish", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}

// ensureUser is the idempotent "ensure identity record" step run before
// anything that references the caller as a foreign key.
func ensureUser(ctx context.Context, repo repository.Repository, ident auth.Identity) (model.User, error) {
	u, err := repo.EnsureUser(ctx, model.User{
		ID:    ident.ID,
		Name:  rules.DisplayName(ident.Email),
		Email: ident.Email,
		Role:  model.RoleUser,
	})
	return u, errors.Wrap(err, "ensure user")
}

func isAdmin(ctx context.Context, repo repository.Repository, ident auth.Identity) (bool, error) {
	u, err := repo.GetUser(ctx, ident.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.Role == model.RoleAdmin, nil
}

// authorize lets the owner or an admin through.
func authorize(ctx context.Context, repo repository.Repository, ident auth.Identity, ownerID string) error {
	if ident.ID == ownerID {
		return nil
	}
	admin, err := isAdmin(ctx, repo, ident)
	if err != nil {
		return err
	}
	if !admin {
		return errs.ErrForbidden
	}
	return nil
}

func (s *Service) IsAdmin(ctx context.Context, ident auth.Identity) (bool, error) {
	return isAdmin(ctx, s.repo, ident)
}
