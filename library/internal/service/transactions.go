package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/model"
	"github.com/Astemirdum/library-desk/library/internal/repository"
	"github.com/Astemirdum/library-desk/library/internal/rules"
	"github.com/Astemirdum/library-desk/pkg/auth"
	"github.com/Astemirdum/library-desk/pkg/kafka"
)

// IssueItem lends an available item to the caller. The transaction insert and
// the availability flip commit together.
func (s *Service) IssueItem(ctx context.Context, ident auth.Identity, req model.IssueRequest) (model.Transaction, error) {
	if err := rules.ValidateIssue(req, s.today()); err != nil {
		return model.Transaction{}, err
	}

	var created model.Transaction
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		if _, err := ensureUser(ctx, repo, ident); err != nil {
			return err
		}
		item, err := repo.GetItemForUpdate(ctx, req.ItemID)
		if err != nil {
			return errors.Wrapf(err, "item %d", req.ItemID)
		}
		if !item.Available {
			return errs.ErrNotAvailable
		}
		created, err = repo.CreateTransaction(ctx, model.Transaction{
			ItemID:             item.ID,
			UserID:             ident.ID,
			IssueDate:          req.IssueDate,
			ExpectedReturnDate: req.ReturnDate,
			Remarks:            req.Remarks,
		})
		if err != nil {
			if errors.Is(err, errs.ErrConflict) {
				return errs.ErrNotAvailable
			}
			return err
		}
		return repo.SetAvailability(ctx, item.ID, false)
	})
	if err != nil {
		return model.Transaction{}, err
	}

	s.log.Info("item issued",
		zap.Int64("transaction", created.ID),
		zap.Int64("item", created.ItemID),
		zap.String("user", created.UserID))
	s.publish(ctx, kafka.Event{
		Type:          kafka.EventItemIssued,
		UserID:        created.UserID,
		ItemID:        created.ItemID,
		TransactionID: created.ID,
	})
	return created, nil
}

func (s *Service) ListOpenTransactions(ctx context.Context, ident auth.Identity) ([]model.TransactionDetails, error) {
	return s.repo.ListOpenTransactions(ctx, ident.ID)
}

func (s *Service) GetTransaction(ctx context.Context, ident auth.Identity, id int64) (model.TransactionDetails, error) {
	t, err := s.repo.GetTransactionDetails(ctx, id)
	if err != nil {
		return model.TransactionDetails{}, err
	}
	if err := authorize(ctx, s.repo, ident, t.UserID); err != nil {
		return model.TransactionDetails{}, err
	}
	return t, nil
}

// ReturnItem closes an issued transaction, computes the fine and makes the
// item available again in one database transaction.
func (s *Service) ReturnItem(ctx context.Context, ident auth.Identity, id int64, req model.ReturnRequest) (model.ReturnResult, error) {
	actual := s.today()
	if req.ActualReturnDate != nil && !req.ActualReturnDate.IsZero() {
		actual = *req.ActualReturnDate
	}

	var returned model.Transaction
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		t, err := repo.GetTransactionForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(ctx, repo, ident, t.UserID); err != nil {
			return err
		}
		if t.Status != model.StatusIssued {
			return errors.Wrapf(errs.ErrInvalidState, "transaction %d is %s", t.ID, t.Status)
		}
		fine := rules.ComputeFine(actual, t.ExpectedReturnDate)
		if returned, err = repo.MarkReturned(ctx, t.ID, actual, fine); err != nil {
			return err
		}
		return repo.SetAvailability(ctx, t.ItemID, true)
	})
	if err != nil {
		return model.ReturnResult{}, err
	}

	res := model.ReturnResult{Transaction: returned, Next: model.NextDone}
	if returned.FineAmount > 0 {
		res.FineDue = true
		res.Next = model.NextPayFine
	}
	s.publish(ctx, kafka.Event{
		Type:          kafka.EventItemReturned,
		UserID:        returned.UserID,
		ItemID:        returned.ItemID,
		TransactionID: returned.ID,
		Amount:        returned.FineAmount,
	})
	return res, nil
}

// SettleFine records the payment confirmation and remarks of a returned transaction.
func (s *Service) SettleFine(ctx context.Context, ident auth.Identity, id int64, req model.SettleFineRequest) (model.Transaction, error) {
	var settled model.Transaction
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		t, err := repo.GetTransactionForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(ctx, repo, ident, t.UserID); err != nil {
			return err
		}
		if t.Status != model.StatusReturned {
			return errors.Wrapf(errs.ErrInvalidState, "transaction %d is %s", t.ID, t.Status)
		}
		if err := rules.CanSettleFine(t.FineAmount, req.FinePaid); err != nil {
			return err
		}
		settled, err = repo.SettleFine(ctx, t.ID, req.FinePaid, req.Remarks)
		return err
	})
	if err != nil {
		return model.Transaction{}, err
	}

	if settled.FineAmount > 0 {
		s.publish(ctx, kafka.Event{
			Type:          kafka.EventFineSettled,
			UserID:        settled.UserID,
			ItemID:        settled.ItemID,
			TransactionID: settled.ID,
			Amount:        settled.FineAmount,
		})
	}
	return settled, nil
}
