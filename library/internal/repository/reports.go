package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-desk/library/internal/model"
)

func reportWhere(filter model.ReportFilter) sq.And {
	where := sq.And{}
	if filter.StartDate != nil {
		where = append(where, sq.GtOrEq{"t.issue_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		where = append(where, sq.LtOrEq{"t.issue_date": *filter.EndDate})
	}
	if filter.Status != "" {
		where = append(where, sq.Eq{"t.status": filter.Status})
	}
	if filter.Type != "" {
		where = append(where, sq.Eq{"i.type": filter.Type})
	}
	return where
}

func (r *repository) ReportRows(ctx context.Context, filter model.ReportFilter) ([]model.ReportRow, error) {
	q := qb.Select(
		"t.id", "t.issue_date", "u.name as user_name", "i.title as item_title", "i.type as item_type",
		"t.status", "t.fine_amount", "t.fine_paid",
	).
		From(transactionsTableName + " t").
		Join(itemsTableName + " i on i.id = t.item_id").
		Join(usersTableName + " u on u.id = t.user_id").
		Where(reportWhere(filter)).
		OrderBy("t.created_at desc", "t.id desc")

	rows := make([]model.ReportRow, 0)
	if err := r.selectAll(ctx, &rows, q, "ReportRows"); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ReportSummary(ctx context.Context, filter model.ReportFilter, today model.Date) (model.ReportSummary, error) {
	q := qb.Select(
		"count(*) filter (where t.status = 'issued') as open",
		"count(*) filter (where t.status = 'returned') as returned",
	).
		Column(sq.Expr("count(*) filter (where t.status = 'issued' and t.expected_return_date < ?) as overdue", today)).
		Column("coalesce(sum(t.fine_amount) filter (where not t.fine_paid), 0) as unpaid_fines").
		From(transactionsTableName + " t").
		Join(itemsTableName + " i on i.id = t.item_id").
		Where(reportWhere(filter))

	var s model.ReportSummary
	err := r.get(ctx, &s, q, "ReportSummary")
	return s, err
}

// dashboardQuery counts items from the catalogue and memberships that are
// active and not yet past their end date.
func dashboardQuery(today model.Date) sq.SelectBuilder {
	return qb.Select(
		"count(*) as total_items",
		"count(*) filter (where not available) as issued_items",
	).
		Column(sq.Expr("(select count(*) from "+membershipsTableName+" m where m.status = ? and m.end_date >= ?) as active_memberships",
			model.MembershipActive, today)).
		From(itemsTableName)
}

func (r *repository) Dashboard(ctx context.Context, today model.Date) (model.DashboardStats, error) {
	var s model.DashboardStats
	err := r.get(ctx, &s, dashboardQuery(today), "Dashboard")
	return s, err
}

func (r *repository) AddActivity(ctx context.Context, a model.Activity) error {
	_, err := r.exec(ctx, qb.Insert(activityTableName).
		Columns("event_type", "user_id", "item_id", "transaction_id", "membership_number", "amount", "occurred_at").
		Values(a.EventType, a.UserID, a.ItemID, a.TransactionID, a.MembershipNumber, a.Amount, a.OccurredAt),
		"AddActivity")
	return err
}

func (r *repository) ListActivity(ctx context.Context, limit int) ([]model.Activity, error) {
	q := qb.Select("id", "event_type", "user_id", "item_id", "transaction_id", "membership_number", "amount", "occurred_at").
		From(activityTableName).
		OrderBy("occurred_at desc", "id desc")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	items := make([]model.Activity, 0)
	if err := r.selectAll(ctx, &items, q, "ListActivity"); err != nil {
		return nil, err
	}
	return items, nil
}
