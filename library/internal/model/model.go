package model

import (
	"time"
)

type ItemType string

const (
	ItemTypeBook  ItemType = "book"
	ItemTypeMovie ItemType = "movie"
)

type Item struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Author       string    `json:"author" db:"author"`
	SerialNumber string    `json:"serialNumber" db:"serial_number"`
	Type         ItemType  `json:"type" db:"type"`
	Available    bool      `json:"available" db:"available"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// ItemRequest carries the editable catalogue fields. Availability is not one
// of them: only issue, return and reconcile move it.
type ItemRequest struct {
	Title        string   `json:"title" validate:"required"`
	Author       string   `json:"author" validate:"required"`
	SerialNumber string   `json:"serialNumber" validate:"required,serial"`
	Type         ItemType `json:"type" validate:"omitempty,oneof=book movie"`
}

type SearchField string

const (
	SearchByTitle  SearchField = "title"
	SearchByAuthor SearchField = "author"
	SearchBySerial SearchField = "serial_number"
)

type ItemFilter struct {
	Search    string
	Field     SearchField
	Available *bool
}

type TransactionStatus string

const (
	StatusIssued   TransactionStatus = "issued"
	StatusReturned TransactionStatus = "returned"
)

type Transaction struct {
	ID                 int64             `json:"id" db:"id"`
	ItemID             int64             `json:"itemId" db:"item_id"`
	UserID             string            `json:"userId" db:"user_id"`
	IssueDate          Date              `json:"issueDate" db:"issue_date"`
	ExpectedReturnDate Date              `json:"expectedReturnDate" db:"expected_return_date"`
	ActualReturnDate   *Date             `json:"actualReturnDate" db:"actual_return_date"`
	Status             TransactionStatus `json:"status" db:"status"`
	FineAmount         float64           `json:"fineAmount" db:"fine_amount"`
	FinePaid           bool              `json:"finePaid" db:"fine_paid"`
	Remarks            string            `json:"remarks" db:"remarks"`
	CreatedAt          time.Time         `json:"createdAt" db:"created_at"`
}

// TransactionDetails is a transaction joined with its item and borrower.
// The summaries are embedded so sqlx maps the joined columns flat.
type TransactionDetails struct {
	Transaction
	ItemSummary `json:"item"`
	UserSummary `json:"user"`
}

type ItemSummary struct {
	Title        string   `json:"title" db:"item_title"`
	Author       string   `json:"author" db:"item_author"`
	SerialNumber string   `json:"serialNumber" db:"item_serial_number"`
	Type         ItemType `json:"type" db:"item_type"`
}

type UserSummary struct {
	Name  string `json:"name" db:"user_name"`
	Email string `json:"email" db:"user_email"`
}

type IssueRequest struct {
	ItemID     int64  `json:"itemId" validate:"required,gt=0"`
	IssueDate  Date   `json:"issueDate"`
	ReturnDate Date   `json:"returnDate"`
	Remarks    string `json:"remarks"`
}

type ReturnRequest struct {
	// ActualReturnDate defaults to today when empty.
	ActualReturnDate *Date `json:"actualReturnDate"`
}

type NextStep string

const (
	NextPayFine NextStep = "pay-fine"
	NextDone    NextStep = "done"
)

type ReturnResult struct {
	Transaction Transaction `json:"transaction"`
	FineDue     bool        `json:"fineDue"`
	Next        NextStep    `json:"next"`
}

type SettleFineRequest struct {
	FinePaid bool   `json:"finePaid"`
	Remarks  string `json:"remarks"`
}

type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipCancelled MembershipStatus = "cancelled"
)

type Membership struct {
	ID               int64            `json:"id" db:"id"`
	UserID           string           `json:"userId" db:"user_id"`
	MembershipNumber string           `json:"membershipNumber" db:"membership_number"`
	StartDate        Date             `json:"startDate" db:"start_date"`
	EndDate          Date             `json:"endDate" db:"end_date"`
	Status           MembershipStatus `json:"status" db:"status"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
}

type MembershipDetails struct {
	Membership
	UserSummary `json:"user"`
}

type CreateMembershipRequest struct {
	StartDate Date `json:"startDate"`
	Duration  int  `json:"duration" validate:"required,oneof=6 12 24"`
}

type MembershipAction string

const (
	ActionExtend MembershipAction = "extend"
	ActionCancel MembershipAction = "cancel"
)

type UpdateMembershipRequest struct {
	Action   MembershipAction `json:"action" validate:"required,oneof=extend cancel"`
	Duration int              `json:"duration" validate:"omitempty,oneof=6 12 24"`
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type UserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  Role   `json:"role" validate:"omitempty,oneof=user admin"`
}

type ReportFilter struct {
	StartDate *Date
	EndDate   *Date
	Status    TransactionStatus
	Type      ItemType
}

type ReportRow struct {
	TransactionID int64             `json:"transactionId" db:"id"`
	IssueDate     Date              `json:"issueDate" db:"issue_date"`
	UserName      string            `json:"userName" db:"user_name"`
	ItemTitle     string            `json:"itemTitle" db:"item_title"`
	ItemType      ItemType          `json:"itemType" db:"item_type"`
	Status        TransactionStatus `json:"status" db:"status"`
	FineAmount    float64           `json:"fineAmount" db:"fine_amount"`
	FinePaid      bool              `json:"finePaid" db:"fine_paid"`
}

type ReportSummary struct {
	Open        int     `json:"open" db:"open"`
	Returned    int     `json:"returned" db:"returned"`
	Overdue     int     `json:"overdue" db:"overdue"`
	UnpaidFines float64 `json:"unpaidFines" db:"unpaid_fines"`
}

// DashboardStats are the catalogue and membership headline counts.
type DashboardStats struct {
	TotalItems        int `json:"totalItems" db:"total_items"`
	IssuedItems       int `json:"issuedItems" db:"issued_items"`
	ActiveMemberships int `json:"activeMemberships" db:"active_memberships"`
}

type TransactionReport struct {
	Rows       []ReportRow   `json:"rows"`
	TotalFines float64       `json:"totalFines"`
	Summary    ReportSummary `json:"summary"`
}

type Activity struct {
	ID               int64     `json:"id" db:"id"`
	EventType        string    `json:"eventType" db:"event_type"`
	UserID           string    `json:"userId" db:"user_id"`
	ItemID           *int64    `json:"itemId,omitempty" db:"item_id"`
	TransactionID    *int64    `json:"transactionId,omitempty" db:"transaction_id"`
	MembershipNumber *string   `json:"membershipNumber,omitempty" db:"membership_number"`
	Amount           float64   `json:"amount" db:"amount"`
	OccurredAt       time.Time `json:"occurredAt" db:"occurred_at"`
}

type ReconcileResult struct {
	MarkedUnavailable int64 `json:"markedUnavailable"`
	MarkedAvailable   int64 `json:"markedAvailable"`
}
