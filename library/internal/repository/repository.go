package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/model"
)

type Repository interface {
	// WithTx runs fn against a repository bound to one database transaction.
	// Nested calls reuse the outer transaction.
	WithTx(ctx context.Context, fn func(Repository) error) error

	ListItems(ctx context.Context, filter model.ItemFilter) ([]model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	GetItemForUpdate(ctx context.Context, id int64) (model.Item, error)
	CreateItem(ctx context.Context, req model.ItemRequest) (model.Item, error)
	UpdateItem(ctx context.Context, id int64, req model.ItemRequest) (model.Item, error)
	SetAvailability(ctx context.Context, itemID int64, available bool) error
	ReconcileAvailability(ctx context.Context) (model.ReconcileResult, error)

	CreateTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error)
	GetTransactionForUpdate(ctx context.Context, id int64) (model.Transaction, error)
	GetTransactionDetails(ctx context.Context, id int64) (model.TransactionDetails, error)
	ListOpenTransactions(ctx context.Context, userID string) ([]model.TransactionDetails, error)
	MarkReturned(ctx context.Context, id int64, actual model.Date, fine float64) (model.Transaction, error)
	SettleFine(ctx context.Context, id int64, finePaid bool, remarks string) (model.Transaction, error)

	CreateMembership(ctx context.Context, m model.Membership) (model.Membership, error)
	GetMembershipByNumber(ctx context.Context, number string) (model.MembershipDetails, error)
	UpdateMembership(ctx context.Context, id int64, endDate model.Date, status model.MembershipStatus) (model.Membership, error)
	ListMemberships(ctx context.Context, userID string) ([]model.Membership, error)

	GetUser(ctx context.Context, id string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	UpdateUser(ctx context.Context, id string, req model.UserRequest) (model.User, error)
	EnsureUser(ctx context.Context, u model.User) (model.User, error)

	ReportRows(ctx context.Context, filter model.ReportFilter) ([]model.ReportRow, error)
	ReportSummary(ctx context.Context, filter model.ReportFilter, today model.Date) (model.ReportSummary, error)
	Dashboard(ctx context.Context, today model.Date) (model.DashboardStats, error)
	AddActivity(ctx context.Context, a model.Activity) error
	ListActivity(ctx context.Context, limit int) ([]model.Activity, error)
}

type repository struct {
	db  *sqlx.DB
	ext sqlx.ExtContext
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	return &repository{
		db:  db,
		ext: db,
		log: log.Named("repo"),
	}, nil
}

const (
	itemsTableName        = `items`
	transactionsTableName = `transactions`
	membershipsTableName  = `memberships`
	usersTableName        = `users`
	activityTableName     = `activity_log`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithTx(ctx context.Context, fn func(Repository) error) error {
	if _, ok := r.ext.(*sqlx.Tx); ok {
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&repository{db: r.db, ext: tx, log: r.log}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "commit")
}

func (r *repository) get(ctx context.Context, dest any, b sq.Sqlizer, op string) error {
	q, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if err := sqlx.GetContext(ctx, r.ext, dest, q, args...); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.log.Error(op, zap.String("q", q), zap.Any("args", args), zap.Error(err))
		}
		return mapErr(err)
	}
	return nil
}

func (r *repository) selectAll(ctx context.Context, dest any, b sq.Sqlizer, op string) error {
	q, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, op)
	}
	r.log.Debug(op, zap.String("q", q), zap.Any("args", args))
	if err := sqlx.SelectContext(ctx, r.ext, dest, q, args...); err != nil {
		r.log.Error(op, zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return mapErr(err)
	}
	return nil
}

func (r *repository) exec(ctx context.Context, b sq.Sqlizer, op string) (int64, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, op)
	}
	res, err := r.ext.ExecContext(ctx, q, args...)
	if err != nil {
		r.log.Error(op, zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return 0, mapErr(err)
	}
	return res.RowsAffected()
}

func mapErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrap(errs.ErrConflict, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}
