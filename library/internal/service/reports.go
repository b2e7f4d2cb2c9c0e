package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/model"
	"github.com/Astemirdum/library-desk/library/internal/repository"
	"github.com/Astemirdum/library-desk/pkg/kafka"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// TransactionReport loads the filtered rows and the aggregate summary concurrently.
func (s *Service) TransactionReport(ctx context.Context, filter model.ReportFilter) (model.TransactionReport, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		v := new(errs.ValidationError)
		v.Add("endDate", "cannot be earlier than the start date")
		return model.TransactionReport{}, v.Err()
	}

	var report model.TransactionReport
	today := s.today()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.ReportRows(gctx, filter)
		report.Rows = rows
		return err
	})
	g.Go(func() error {
		summary, err := s.repo.ReportSummary(gctx, filter, today)
		report.Summary = summary
		return err
	})
	if err := g.Wait(); err != nil {
		return model.TransactionReport{}, err
	}

	for _, r := range report.Rows {
		report.TotalFines += r.FineAmount
	}
	return report, nil
}

// Dashboard returns the headline counts for the home page.
func (s *Service) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	return s.repo.Dashboard(ctx, s.today())
}

func (s *Service) ListActivity(ctx context.Context, limit int) ([]model.Activity, error) {
	switch {
	case limit <= 0:
		limit = defaultActivityLimit
	case limit > maxActivityLimit:
		limit = maxActivityLimit
	}
	return s.repo.ListActivity(ctx, limit)
}

// RecordActivity stores an event consumed from the activity topic.
func (s *Service) RecordActivity(ctx context.Context, ev kafka.Event) error {
	a := model.Activity{
		EventType:  string(ev.Type),
		UserID:     ev.UserID,
		Amount:     ev.Amount,
		OccurredAt: ev.OccurredAt,
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = s.now().UTC()
	}
	if ev.ItemID != 0 {
		a.ItemID = &ev.ItemID
	}
	if ev.TransactionID != 0 {
		a.TransactionID = &ev.TransactionID
	}
	if ev.MembershipNumber != "" {
		a.MembershipNumber = &ev.MembershipNumber
	}
	return s.repo.AddActivity(ctx, a)
}

// Reconcile realigns every item's availability flag with its open transactions.
func (s *Service) Reconcile(ctx context.Context) (model.ReconcileResult, error) {
	start := time.Now()
	var res model.ReconcileResult
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		var err error
		res, err = repo.ReconcileAvailability(ctx)
		return err
	})
	if err != nil {
		return model.ReconcileResult{}, err
	}
	s.log.Info("availability reconciled",
		zap.Int64("markedUnavailable", res.MarkedUnavailable),
		zap.Int64("markedAvailable", res.MarkedAvailable),
		zap.Duration("took", time.Since(start)))
	return res, nil
}
