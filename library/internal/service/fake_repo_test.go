package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/model"
	"github.com/Astemirdum/library-desk/library/internal/repository"
	"github.com/Astemirdum/library-desk/pkg/kafka"
)

// fakeRepo is an in-memory Repository. WithTx runs fn directly.
type fakeRepo struct {
	mu           sync.Mutex
	items        map[int64]model.Item
	transactions map[int64]model.Transaction
	memberships  map[int64]model.Membership
	users        map[string]model.User
	activity     []model.Activity
	seq          int64

	// takenNumbers makes CreateMembership report a conflict for these numbers.
	takenNumbers map[string]bool
}

var _ repository.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:        make(map[int64]model.Item),
		transactions: make(map[int64]model.Transaction),
		memberships:  make(map[int64]model.Membership),
		users:        make(map[string]model.User),
		takenNumbers: make(map[string]bool),
	}
}

func (r *fakeRepo) nextID() int64 {
	r.seq++
	return r.seq
}

func (r *fakeRepo) WithTx(_ context.Context, fn func(repository.Repository) error) error {
	return fn(r)
}

func (r *fakeRepo) ListItems(_ context.Context, filter model.ItemFilter) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Item, 0)
	for _, it := range r.items {
		if filter.Available != nil && it.Available != *filter.Available {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) GetItem(_ context.Context, id int64) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return model.Item{}, errs.ErrNotFound
	}
	return it, nil
}

func (r *fakeRepo) GetItemForUpdate(ctx context.Context, id int64) (model.Item, error) {
	return r.GetItem(ctx, id)
}

func (r *fakeRepo) CreateItem(_ context.Context, req model.ItemRequest) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.SerialNumber == req.SerialNumber {
			return model.Item{}, errors.Wrap(errs.ErrConflict, "items_serial_number_key")
		}
	}
	it := model.Item{
		ID:           r.nextID(),
		Title:        req.Title,
		Author:       req.Author,
		SerialNumber: req.SerialNumber,
		Type:         req.Type,
		Available:    true,
	}
	r.items[it.ID] = it
	return it, nil
}

func (r *fakeRepo) UpdateItem(_ context.Context, id int64, req model.ItemRequest) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return model.Item{}, errs.ErrNotFound
	}
	it.Title, it.Author, it.SerialNumber, it.Type = req.Title, req.Author, req.SerialNumber, req.Type
	r.items[id] = it
	return it, nil
}

func (r *fakeRepo) SetAvailability(_ context.Context, itemID int64, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[itemID]
	if !ok {
		return errs.ErrNotFound
	}
	it.Available = available
	r.items[itemID] = it
	return nil
}

func (r *fakeRepo) ReconcileAvailability(_ context.Context) (model.ReconcileResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	open := make(map[int64]bool)
	for _, t := range r.transactions {
		if t.Status == model.StatusIssued {
			open[t.ItemID] = true
		}
	}
	var res model.ReconcileResult
	for id, it := range r.items {
		switch {
		case open[id] && it.Available:
			it.Available = false
			res.MarkedUnavailable++
		case !open[id] && !it.Available:
			it.Available = true
			res.MarkedAvailable++
		default:
			continue
		}
		r.items[id] = it
	}
	return res, nil
}

func (r *fakeRepo) CreateTransaction(_ context.Context, t model.Transaction) (model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[t.UserID]; !ok {
		return model.Transaction{}, errors.Wrap(errs.ErrNotFound, "transactions_user_id_fkey")
	}
	for _, o := range r.transactions {
		if o.ItemID == t.ItemID && o.Status == model.StatusIssued {
			return model.Transaction{}, errors.Wrap(errs.ErrConflict, "transactions_one_open_per_item")
		}
	}
	t.ID = r.nextID()
	t.Status = model.StatusIssued
	r.transactions[t.ID] = t
	return t, nil
}

func (r *fakeRepo) GetTransactionForUpdate(_ context.Context, id int64) (model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return model.Transaction{}, errs.ErrNotFound
	}
	return t, nil
}

func (r *fakeRepo) details(t model.Transaction) model.TransactionDetails {
	it, u := r.items[t.ItemID], r.users[t.UserID]
	return model.TransactionDetails{
		Transaction: t,
		ItemSummary: model.ItemSummary{Title: it.Title, Author: it.Author, SerialNumber: it.SerialNumber, Type: it.Type},
		UserSummary: model.UserSummary{Name: u.Name, Email: u.Email},
	}
}

func (r *fakeRepo) GetTransactionDetails(_ context.Context, id int64) (model.TransactionDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return model.TransactionDetails{}, errs.ErrNotFound
	}
	return r.details(t), nil
}

func (r *fakeRepo) ListOpenTransactions(_ context.Context, userID string) ([]model.TransactionDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.TransactionDetails, 0)
	for _, t := range r.transactions {
		if t.Status == model.StatusIssued && (userID == "" || t.UserID == userID) {
			out = append(out, r.details(t))
		}
	}
	return out, nil
}

func (r *fakeRepo) MarkReturned(_ context.Context, id int64, actual model.Date, fine float64) (model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return model.Transaction{}, errs.ErrNotFound
	}
	t.ActualReturnDate = &actual
	t.FineAmount = fine
	t.Status = model.StatusReturned
	r.transactions[id] = t
	return t, nil
}

func (r *fakeRepo) SettleFine(_ context.Context, id int64, finePaid bool, remarks string) (model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return model.Transaction{}, errs.ErrNotFound
	}
	t.FinePaid = finePaid
	t.Remarks = remarks
	r.transactions[id] = t
	return t, nil
}

func (r *fakeRepo) CreateMembership(_ context.Context, m model.Membership) (model.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.takenNumbers[m.MembershipNumber] {
		return model.Membership{}, errors.Wrap(errs.ErrConflict, "memberships_membership_number_key")
	}
	m.ID = r.nextID()
	r.memberships[m.ID] = m
	r.takenNumbers[m.MembershipNumber] = true
	return m, nil
}

func (r *fakeRepo) GetMembershipByNumber(_ context.Context, number string) (model.MembershipDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.memberships {
		if m.MembershipNumber == number {
			u := r.users[m.UserID]
			return model.MembershipDetails{Membership: m, UserSummary: model.UserSummary{Name: u.Name, Email: u.Email}}, nil
		}
	}
	return model.MembershipDetails{}, errs.ErrNotFound
}

func (r *fakeRepo) UpdateMembership(_ context.Context, id int64, endDate model.Date, status model.MembershipStatus) (model.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.memberships[id]
	if !ok {
		return model.Membership{}, errs.ErrNotFound
	}
	m.EndDate, m.Status = endDate, status
	r.memberships[id] = m
	return m, nil
}

func (r *fakeRepo) ListMemberships(_ context.Context, userID string) ([]model.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Membership, 0)
	for _, m := range r.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetUser(_ context.Context, id string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (r *fakeRepo) ListUsers(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeRepo) CreateUser(_ context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.users {
		if o.Email == u.Email {
			return model.User{}, errors.Wrap(errs.ErrConflict, "users_email_key")
		}
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeRepo) UpdateUser(_ context.Context, id string, req model.UserRequest) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	u.Name, u.Email = req.Name, req.Email
	if req.Role != "" {
		u.Role = req.Role
	}
	r.users[id] = u
	return u, nil
}

func (r *fakeRepo) EnsureUser(_ context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[u.ID]; ok {
		return existing, nil
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeRepo) ReportRows(_ context.Context, filter model.ReportFilter) ([]model.ReportRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ReportRow, 0)
	for _, t := range r.transactions {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, model.ReportRow{
			TransactionID: t.ID,
			IssueDate:     t.IssueDate,
			UserName:      r.users[t.UserID].Name,
			ItemTitle:     r.items[t.ItemID].Title,
			ItemType:      r.items[t.ItemID].Type,
			Status:        t.Status,
			FineAmount:    t.FineAmount,
			FinePaid:      t.FinePaid,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransactionID > out[j].TransactionID })
	return out, nil
}

func (r *fakeRepo) ReportSummary(_ context.Context, _ model.ReportFilter, today model.Date) (model.ReportSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s model.ReportSummary
	for _, t := range r.transactions {
		switch t.Status {
		case model.StatusIssued:
			s.Open++
			if t.ExpectedReturnDate.Before(today) {
				s.Overdue++
			}
		case model.StatusReturned:
			s.Returned++
		}
		if !t.FinePaid {
			s.UnpaidFines += t.FineAmount
		}
	}
	return s, nil
}

func (r *fakeRepo) Dashboard(_ context.Context, today model.Date) (model.DashboardStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s model.DashboardStats
	for _, it := range r.items {
		s.TotalItems++
		if !it.Available {
			s.IssuedItems++
		}
	}
	for _, m := range r.memberships {
		if m.Status == model.MembershipActive && !m.EndDate.Before(today) {
			s.ActiveMemberships++
		}
	}
	return s, nil
}

func (r *fakeRepo) AddActivity(_ context.Context, a model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID()
	r.activity = append(r.activity, a)
	return nil
}

func (r *fakeRepo) ListActivity(_ context.Context, limit int) ([]model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.activity) {
		limit = len(r.activity)
	}
	return append([]model.Activity(nil), r.activity[:limit]...), nil
}

// recordingPublisher keeps published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev kafka.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.EventType, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
