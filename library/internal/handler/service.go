package handler

import (
	"context"

	"github.com/Astemirdum/library-desk/library/internal/model"
	"github.com/Astemirdum/library-desk/library/internal/service"
	"github.com/Astemirdum/library-desk/pkg/auth"
	"github.com/Astemirdum/library-desk/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ LibraryService = (*service.Service)(nil)

type LibraryService interface {
	IsAdmin(ctx context.Context, ident auth.Identity) (bool, error)

	ListItems(ctx context.Context, filter model.ItemFilter) ([]model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	CreateItem(ctx context.Context, req model.ItemRequest) (model.Item, error)
	UpdateItem(ctx context.Context, id int64, req model.ItemRequest) (model.Item, error)

	IssueItem(ctx context.Context, ident auth.Identity, req model.IssueRequest) (model.Transaction, error)
	ListOpenTransactions(ctx context.Context, ident auth.Identity) ([]model.TransactionDetails, error)
	GetTransaction(ctx context.Context, ident auth.Identity, id int64) (model.TransactionDetails, error)
	ReturnItem(ctx context.Context, ident auth.Identity, id int64, req model.ReturnRequest) (model.ReturnResult, error)
	SettleFine(ctx context.Context, ident auth.Identity, id int64, req model.SettleFineRequest) (model.Transaction, error)

	CreateMembership(ctx context.Context, ident auth.Identity, req model.CreateMembershipRequest) (model.Membership, error)
	GetMembership(ctx context.Context, number string) (model.MembershipDetails, error)
	ListMemberships(ctx context.Context, ident auth.Identity) ([]model.Membership, error)
	UpdateMembership(ctx context.Context, number string, req model.UpdateMembershipRequest) (model.Membership, error)

	EnsureUser(ctx context.Context, ident auth.Identity) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, req model.UserRequest) (model.User, error)
	UpdateUser(ctx context.Context, id string, req model.UserRequest) (model.User, error)

	TransactionReport(ctx context.Context, filter model.ReportFilter) (model.TransactionReport, error)
	Dashboard(ctx context.Context) (model.DashboardStats, error)
	ListActivity(ctx context.Context, limit int) ([]model.Activity, error)
	RecordActivity(ctx context.Context, ev kafka.Event) error
	Reconcile(ctx context.Context) (model.ReconcileResult, error)
}
