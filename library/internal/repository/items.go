package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/model"
)

var itemColumns = []string{"id", "title", "author", "serial_number", "type", "available", "created_at"}

const returningItem = "returning id, title, author, serial_number, type, available, created_at"

func (r *repository) ListItems(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	q := qb.Select(itemColumns...).
		From(itemsTableName).
		OrderBy("created_at desc", "id desc")

	if filter.Search != "" {
		field := filter.Field
		switch field {
		case model.SearchByTitle, model.SearchByAuthor, model.SearchBySerial:
			q = q.Where(sq.ILike{string(field): "%" + filter.Search + "%"})
		default:
			pattern := "%" + filter.Search + "%"
			q = q.Where(sq.Or{
				sq.ILike{"title": pattern},
				sq.ILike{"author": pattern},
				sq.ILike{"serial_number": pattern},
			})
		}
	}
	if filter.Available != nil {
		q = q.Where(sq.Eq{"available": *filter.Available})
	}

	items := make([]model.Item, 0)
	if err := r.selectAll(ctx, &items, q, "ListItems"); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	var item model.Item
	err := r.get(ctx, &item, qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"id": id}), "GetItem")
	return item, err
}

func (r *repository) GetItemForUpdate(ctx context.Context, id int64) (model.Item, error) {
	var item model.Item
	err := r.get(ctx, &item, qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update"), "GetItemForUpdate")
	return item, err
}

func (r *repository) CreateItem(ctx context.Context, req model.ItemRequest) (model.Item, error) {
	itemType := req.Type
	if itemType == "" {
		itemType = model.ItemTypeBook
	}
	var item model.Item
	err := r.get(ctx, &item, qb.Insert(itemsTableName).
		Columns("title", "author", "serial_number", "type", "available").
		Values(req.Title, req.Author, req.SerialNumber, itemType, true).
		Suffix(returningItem), "CreateItem")
	return item, err
}

func (r *repository) UpdateItem(ctx context.Context, id int64, req model.ItemRequest) (model.Item, error) {
	q := qb.Update(itemsTableName).
		Set("title", req.Title).
		Set("author", req.Author).
		Set("serial_number", req.SerialNumber).
		Where(sq.Eq{"id": id}).
		Suffix(returningItem)
	if req.Type != "" {
		q = q.Set("type", req.Type)
	}
	var item model.Item
	err := r.get(ctx, &item, q, "UpdateItem")
	return item, err
}

func (r *repository) SetAvailability(ctx context.Context, itemID int64, available bool) error {
	n, err := r.exec(ctx, qb.Update(itemsTableName).
		Set("available", available).
		Where(sq.Eq{"id": itemID}), "SetAvailability")
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errs.ErrNotFound, "item %d", itemID)
	}
	return nil
}

func (r *repository) ReconcileAvailability(ctx context.Context) (model.ReconcileResult, error) {
	const openTx = `select 1 from transactions t where t.item_id = items.id and t.status = 'issued'`

	var res model.ReconcileResult
	n, err := r.exec(ctx, qb.Update(itemsTableName).
		Set("available", false).
		Where(sq.Eq{"available": true}).
		Where("exists (" + openTx + ")"), "ReconcileAvailability.unavailable")
	if err != nil {
		return res, err
	}
	res.MarkedUnavailable = n

	n, err = r.exec(ctx, qb.Update(itemsTableName).
		Set("available", true).
		Where(sq.Eq{"available": false}).
		Where("not exists (" + openTx + ")"), "ReconcileAvailability.available")
	if err != nil {
		return res, err
	}
	res.MarkedAvailable = n
	return res, nil
}
