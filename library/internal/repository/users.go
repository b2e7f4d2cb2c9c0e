package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-desk/library/internal/model"
)

var userColumns = []string{"id", "name", "email", "role", "created_at"}

const returningUser = "returning id, name, email, role, created_at"

func (r *repository) GetUser(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.get(ctx, &u, qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id}), "GetUser")
	return u, err
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.selectAll(ctx, &users, qb.Select(userColumns...).
		From(usersTableName).
		OrderBy("created_at desc"), "ListUsers"); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	var created model.User
	err := r.get(ctx, &created, qb.Insert(usersTableName).
		Columns("id", "name", "email", "role").
		Values(u.ID, u.Name, u.Email, u.Role).
		Suffix(returningUser), "CreateUser")
	return created, err
}

func (r *repository) UpdateUser(ctx context.Context, id string, req model.UserRequest) (model.User, error) {
	q := qb.Update(usersTableName).
		Set("name", req.Name).
		Set("email", req.Email).
		Where(sq.Eq{"id": id}).
		Suffix(returningUser)
	if req.Role != "" {
		q = q.Set("role", req.Role)
	}
	var u model.User
	err := r.get(ctx, &u, q, "UpdateUser")
	return u, err
}

// EnsureUser inserts u unless a row with the same id exists, then returns the stored row.
func (r *repository) EnsureUser(ctx context.Context, u model.User) (model.User, error) {
	if _, err := r.exec(ctx, qb.Insert(usersTableName).
		Columns("id", "name", "email", "role").
		Values(u.ID, u.Name, u.Email, u.Role).
		Suffix("on conflict (id) do nothing"), "EnsureUser"); err != nil {
		return model.User{}, err
	}
	return r.GetUser(ctx, u.ID)
}
