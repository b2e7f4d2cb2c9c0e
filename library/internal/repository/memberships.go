package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-desk/library/internal/model"
)

var membershipColumns = []string{"id", "user_id", "membership_number", "start_date", "end_date", "status", "created_at"}

const returningMembership = "returning id, user_id, membership_number, start_date, end_date, status, created_at"

func (r *repository) CreateMembership(ctx context.Context, m model.Membership) (model.Membership, error) {
	var created model.Membership
	err := r.get(ctx, &created, qb.Insert(membershipsTableName).
		Columns("user_id", "membership_number", "start_date", "end_date", "status").
		Values(m.UserID, m.MembershipNumber, m.StartDate, m.EndDate, m.Status).
		Suffix(returningMembership), "CreateMembership")
	return created, err
}

// GetMembershipByNumber matches the number exactly, case included.
func (r *repository) GetMembershipByNumber(ctx context.Context, number string) (model.MembershipDetails, error) {
	var m model.MembershipDetails
	err := r.get(ctx, &m, qb.Select(
		"m.id", "m.user_id", "m.membership_number", "m.start_date", "m.end_date", "m.status", "m.created_at",
		"u.name as user_name", "u.email as user_email",
	).
		From(membershipsTableName+" m").
		Join(usersTableName+" u on u.id = m.user_id").
		Where(sq.Eq{"m.membership_number": number}), "GetMembershipByNumber")
	return m, err
}

func (r *repository) UpdateMembership(ctx context.Context, id int64, endDate model.Date, status model.MembershipStatus) (model.Membership, error) {
	var m model.Membership
	err := r.get(ctx, &m, qb.Update(membershipsTableName).
		Set("end_date", endDate).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix(returningMembership), "UpdateMembership")
	return m, err
}

func (r *repository) ListMemberships(ctx context.Context, userID string) ([]model.Membership, error) {
	q := qb.Select(membershipColumns...).
		From(membershipsTableName).
		OrderBy("created_at desc")
	if userID != "" {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	items := make([]model.Membership, 0)
	if err := r.selectAll(ctx, &items, q, "ListMemberships"); err != nil {
		return nil, err
	}
	return items, nil
}
