package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-desk/library/internal/model"
)

var transactionColumns = []string{
	"id", "item_id", "user_id", "issue_date", "expected_return_date", "actual_return_date",
	"status", "fine_amount", "fine_paid", "remarks", "created_at",
}

const returningTransaction = "returning id, item_id, user_id, issue_date, expected_return_date, actual_return_date, status, fine_amount, fine_paid, remarks, created_at"

func transactionDetailsQuery() sq.SelectBuilder {
	return qb.Select(
		"t.id", "t.item_id", "t.user_id", "t.issue_date", "t.expected_return_date", "t.actual_return_date",
		"t.status", "t.fine_amount", "t.fine_paid", "t.remarks", "t.created_at",
		"i.title as item_title", "i.author as item_author", "i.serial_number as item_serial_number", "i.type as item_type",
		"u.name as user_name", "u.email as user_email",
	).
		From(transactionsTableName + " t").
		Join(itemsTableName + " i on i.id = t.item_id").
		Join(usersTableName + " u on u.id = t.user_id")
}

func (r *repository) CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	var created model.Transaction
	err := r.get(ctx, &created, qb.Insert(transactionsTableName).
		Columns("item_id", "user_id", "issue_date", "expected_return_date", "status", "remarks").
		Values(t.ItemID, t.UserID, t.IssueDate, t.ExpectedReturnDate, model.StatusIssued, t.Remarks).
		Suffix(returningTransaction), "CreateTransaction")
	return created, err
}

func (r *repository) GetTransactionForUpdate(ctx context.Context, id int64) (model.Transaction, error) {
	var t model.Transaction
	err := r.get(ctx, &t, qb.Select(transactionColumns...).
		From(transactionsTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update"), "GetTransactionForUpdate")
	return t, err
}

func (r *repository) GetTransactionDetails(ctx context.Context, id int64) (model.TransactionDetails, error) {
	var t model.TransactionDetails
	err := r.get(ctx, &t, transactionDetailsQuery().Where(sq.Eq{"t.id": id}), "GetTransactionDetails")
	return t, err
}

func (r *repository) ListOpenTransactions(ctx context.Context, userID string) ([]model.TransactionDetails, error) {
	q := transactionDetailsQuery().
		Where(sq.Eq{"t.status": model.StatusIssued}).
		OrderBy("t.issue_date", "t.id")
	if userID != "" {
		q = q.Where(sq.Eq{"t.user_id": userID})
	}
	items := make([]model.TransactionDetails, 0)
	if err := r.selectAll(ctx, &items, q, "ListOpenTransactions"); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) MarkReturned(ctx context.Context, id int64, actual model.Date, fine float64) (model.Transaction, error) {
	var t model.Transaction
	err := r.get(ctx, &t, qb.Update(transactionsTableName).
		Set("actual_return_date", actual).
		Set("fine_amount", fine).
		Set("status", model.StatusReturned).
		Where(sq.Eq{"id": id, "status": model.StatusIssued}).
		Suffix(returningTransaction), "MarkReturned")
	return t, err
}

func (r *repository) SettleFine(ctx context.Context, id int64, finePaid bool, remarks string) (model.Transaction, error) {
	var t model.Transaction
	err := r.get(ctx, &t, qb.Update(transactionsTableName).
		Set("fine_paid", finePaid).
		Set("remarks", remarks).
		Where(sq.Eq{"id": id}).
		Suffix(returningTransaction), "SettleFine")
	return t, err
}
