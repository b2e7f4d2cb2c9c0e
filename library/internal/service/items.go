package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/model"
	"github.com/Astemirdum/library-desk/library/internal/rules"
)

func (s *Service) ListItems(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	switch filter.Field {
	case "", model.SearchByTitle, model.SearchByAuthor, model.SearchBySerial:
	default:
		v := new(errs.ValidationError)
		v.Add("field", "must be title, author or serial_number")
		return nil, v.Err()
	}
	return s.repo.ListItems(ctx, filter)
}

func (s *Service) GetItem(ctx context.Context, id int64) (model.Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) CreateItem(ctx context.Context, req model.ItemRequest) (model.Item, error) {
	req = normalizeItem(req)
	if err := rules.ValidateItem(req); err != nil {
		return model.Item{}, err
	}
	item, err := s.repo.CreateItem(ctx, req)
	if err != nil {
		return model.Item{}, err
	}
	s.log.Debug("item created", zap.Int64("id", item.ID), zap.String("serial", item.SerialNumber))
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int64, req model.ItemRequest) (model.Item, error) {
	req = normalizeItem(req)
	if err := rules.ValidateItem(req); err != nil {
		return model.Item{}, err
	}
	return s.repo.UpdateItem(ctx, id, req)
}

func normalizeItem(req model.ItemRequest) model.ItemRequest {
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.SerialNumber = strings.TrimSpace(req.SerialNumber)
	if req.Type == "" {
		req.Type = model.ItemTypeBook
	}
	return req
}
