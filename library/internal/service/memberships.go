package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/model"
	"github.com/Astemirdum/library-desk/library/internal/repository"
	"github.com/Astemirdum/library-desk/library/internal/rules"
	"github.com/Astemirdum/library-desk/pkg/auth"
	"github.com/Astemirdum/library-desk/pkg/kafka"
)

const membershipNumberAttempts = 5

func (s *Service) CreateMembership(ctx context.Context, ident auth.Identity, req model.CreateMembershipRequest) (model.Membership, error) {
	if err := rules.ValidateNewMembership(req, s.today()); err != nil {
		return model.Membership{}, err
	}
	if _, err := ensureUser(ctx, s.repo, ident); err != nil {
		return model.Membership{}, err
	}

	m := model.Membership{
		UserID:    ident.ID,
		StartDate: req.StartDate,
		EndDate:   rules.MembershipEndDate(req.StartDate, req.Duration),
		Status:    model.MembershipActive,
	}
	var (
		created model.Membership
		err     error
	)
	for i := 0; i < membershipNumberAttempts; i++ {
		m.MembershipNumber = rules.MembershipNumber(s.now(), s.rnd())
		created, err = s.repo.CreateMembership(ctx, m)
		if !errors.Is(err, errs.ErrConflict) {
			break
		}
		s.log.Debug("membership number taken", zap.String("number", m.MembershipNumber))
	}
	if err != nil {
		return model.Membership{}, err
	}

	s.publish(ctx, kafka.Event{
		Type:             kafka.EventMembershipCreated,
		UserID:           created.UserID,
		MembershipNumber: created.MembershipNumber,
	})
	return created, nil
}

func (s *Service) GetMembership(ctx context.Context, number string) (model.MembershipDetails, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		v := new(errs.ValidationError)
		v.Add("number", "required")
		return model.MembershipDetails{}, v.Err()
	}
	return s.repo.GetMembershipByNumber(ctx, number)
}

func (s *Service) ListMemberships(ctx context.Context, ident auth.Identity) ([]model.Membership, error) {
	return s.repo.ListMemberships(ctx, ident.ID)
}

// UpdateMembership extends or cancels the membership with the given number.
func (s *Service) UpdateMembership(ctx context.Context, number string, req model.UpdateMembershipRequest) (model.Membership, error) {
	if err := rules.ValidateMembershipUpdate(req); err != nil {
		return model.Membership{}, err
	}
	number = strings.TrimSpace(number)
	today := s.today()

	var (
		updated model.Membership
		evType  kafka.EventType
	)
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		m, err := repo.GetMembershipByNumber(ctx, number)
		if err != nil {
			return err
		}
		end, status := m.EndDate, model.MembershipCancelled
		evType = kafka.EventMembershipCancelled
		if req.Action == model.ActionExtend {
			end, status = rules.ExtendedEndDate(m.EndDate, today, req.Duration), model.MembershipActive
			evType = kafka.EventMembershipExtended
		}
		updated, err = repo.UpdateMembership(ctx, m.ID, end, status)
		return err
	})
	if err != nil {
		return model.Membership{}, err
	}

	s.publish(ctx, kafka.Event{
		Type:             evType,
		UserID:           updated.UserID,
		MembershipNumber: updated.MembershipNumber,
	})
	return updated, nil
}
