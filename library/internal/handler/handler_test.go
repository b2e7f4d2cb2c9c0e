package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/handler"
	"github.com/Astemirdum/library-desk/library/internal/model"
	"github.com/Astemirdum/library-desk/pkg/auth"

	service_mocks "github.com/Astemirdum/library-desk/library/internal/handler/mocks"
)

var (
	authCfg = auth.Config{JWTSecret: "test-secret", Issuer: "library-desk", TokenTTL: time.Hour}
	caller  = auth.Identity{ID: "7d0c9f5e-8a55-4b3a-9d1e-4a4f3f1b2c10", Email: "jane@example.com"}
)

type request struct {
	method string
	target string
	body   string
	noAuth bool
}

type response struct {
	expectedCode int
	expectedBody string
}

func serve(t *testing.T, svc *service_mocks.MockLibraryService, req request) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.New(svc, authCfg, zap.NewExample().Named("test"))
	e := h.NewRouter()

	var body *strings.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	} else {
		body = strings.NewReader("")
	}
	r := httptest.NewRequest(req.method, req.target, body)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if !req.noAuth {
		token, err := auth.NewToken(authCfg, caller, time.Now())
		require.NoError(t, err)
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_IssueItem(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	issueReq := model.IssueRequest{
		ItemID:     3,
		IssueDate:  model.NewDate(2024, 3, 1),
		ReturnDate: model.NewDate(2024, 3, 10),
		Remarks:    "front desk",
	}
	const body = `{"itemId":3,"issueDate":"2024-03-01","returnDate":"2024-03-10","remarks":"front desk"}`

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		req          request
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					IssueItem(gomock.Any(), caller, issueReq).
					Return(model.Transaction{
						ID:                 1,
						ItemID:             3,
						UserID:             caller.ID,
						IssueDate:          issueReq.IssueDate,
						ExpectedReturnDate: issueReq.ReturnDate,
						Status:             model.StatusIssued,
						Remarks:            "front desk",
					}, nil)
			},
			req: request{method: http.MethodPost, target: "/api/v1/transactions/issue", body: body},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"itemId":3,"userId":"7d0c9f5e-8a55-4b3a-9d1e-4a4f3f1b2c10","issueDate":"2024-03-01","expectedReturnDate":"2024-03-10","actualReturnDate":null,"status":"issued","fineAmount":0,"finePaid":false,"remarks":"front desk","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. not available",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().IssueItem(gomock.Any(), caller, issueReq).Return(model.Transaction{}, errs.ErrNotAvailable)
			},
			req: request{method: http.MethodPost, target: "/api/v1/transactions/issue", body: body},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"item is not available"}`,
			},
		},
		{
			name: "err. loan window",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				v := new(errs.ValidationError)
				v.Add("returnDate", "cannot be more than 15 days from the issue date")
				r.EXPECT().IssueItem(gomock.Any(), caller, issueReq).Return(model.Transaction{}, v)
			},
			req: request{method: http.MethodPost, target: "/api/v1/transactions/issue", body: body},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"fields":{"returnDate":"cannot be more than 15 days from the issue date"},"message":"validation failed"}`,
			},
		},
		{
			name:         "err. item required",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req:          request{method: http.MethodPost, target: "/api/v1/transactions/issue", body: `{"issueDate":"2024-03-01"}`},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"fields":{"itemId":"required"},"message":"validation failed"}`,
			},
		},
		{
			name:         "err. bad date",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req:          request{method: http.MethodPost, target: "/api/v1/transactions/issue", body: `{"itemId":3,"issueDate":"01/03/2024"}`},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid request body"}`,
			},
		},
		{
			name:         "err. no token",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req:          request{method: http.MethodPost, target: "/api/v1/transactions/issue", body: body, noAuth: true},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"No Authorization Header"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)

			tt.mockBehavior(svc)
			w := serve(t, svc, tt.req)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnItem(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	late := model.NewDate(2024, 3, 13)
	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		req          request
		response     response
	}{
		{
			name: "ok. fine due",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnItem(gomock.Any(), caller, int64(1), model.ReturnRequest{ActualReturnDate: &late}).
					Return(model.ReturnResult{
						Transaction: model.Transaction{
							ID:                 1,
							ItemID:             3,
							UserID:             caller.ID,
							IssueDate:          model.NewDate(2024, 3, 1),
							ExpectedReturnDate: model.NewDate(2024, 3, 10),
							ActualReturnDate:   &late,
							Status:             model.StatusReturned,
							FineAmount:         3,
						},
						FineDue: true,
						Next:    model.NextPayFine,
					}, nil)
			},
			req: request{method: http.MethodPost, target: "/api/v1/transactions/1/return", body: `{"actualReturnDate":"2024-03-13"}`},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"transaction":{"id":1,"itemId":3,"userId":"7d0c9f5e-8a55-4b3a-9d1e-4a4f3f1b2c10","issueDate":"2024-03-01","expectedReturnDate":"2024-03-10","actualReturnDate":"2024-03-13","status":"returned","fineAmount":3,"finePaid":false,"remarks":"","createdAt":"0001-01-01T00:00:00Z"},"fineDue":true,"next":"pay-fine"}`,
			},
		},
		{
			name: "err. already returned",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnItem(gomock.Any(), caller, int64(1), model.ReturnRequest{}).
					Return(model.ReturnResult{}, errors.Wrap(errs.ErrInvalidState, "transaction 1 is returned"))
			},
			req: request{method: http.MethodPost, target: "/api/v1/transactions/1/return", body: `{}`},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"transaction 1 is returned: transaction is in the wrong state"}`,
			},
		},
		{
			name: "err. someone else's transaction",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnItem(gomock.Any(), caller, int64(2), model.ReturnRequest{}).
					Return(model.ReturnResult{}, errs.ErrForbidden)
			},
			req: request{method: http.MethodPost, target: "/api/v1/transactions/2/return", body: `{}`},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
		},
		{
			name:         "err. bad id",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req:          request{method: http.MethodPost, target: "/api/v1/transactions/abc/return", body: `{}`},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)

			tt.mockBehavior(svc)
			w := serve(t, svc, tt.req)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SettleFine(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	svc.EXPECT().
		SettleFine(gomock.Any(), caller, int64(1), model.SettleFineRequest{FinePaid: false, Remarks: "later"}).
		Return(model.Transaction{}, errs.ErrFineUnpaid)

	w := serve(t, svc, request{
		method: http.MethodPost,
		target: "/api/v1/transactions/1/fine",
		body:   `{"finePaid":false,"remarks":"later"}`,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, `{"message":"please confirm payment of the fine to complete the transaction"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ListItems(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	available := true
	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		req          request
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListItems(gomock.Any(), model.ItemFilter{Search: "tolkien", Field: model.SearchByAuthor, Available: &available}).
					Return([]model.Item{{
						ID:           5,
						Title:        "The Hobbit",
						Author:       "J. R. R. Tolkien",
						SerialNumber: "BK-0005",
						Type:         model.ItemTypeBook,
						Available:    true,
						CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
					}}, nil)
			},
			req: request{method: http.MethodGet, target: "/api/v1/items?search=tolkien&field=author&available=true"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":5,"title":"The Hobbit","author":"J. R. R. Tolkien","serialNumber":"BK-0005","type":"book","available":true,"createdAt":"2024-01-02T03:04:05Z"}]`,
			},
		},
		{
			name:         "err. available",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req:          request{method: http.MethodGet, target: "/api/v1/items?available=maybe"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"available is invalid"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().ListItems(gomock.Any(), model.ItemFilter{}).Return(nil, errors.New("db internal"))
			},
			req: request{method: http.MethodGet, target: "/api/v1/items"},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)

			tt.mockBehavior(svc)
			w := serve(t, svc, tt.req)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateItem(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, request{
		method: http.MethodPost,
		target: "/api/v1/items",
		body:   `{"title":"Dune","author":"Frank Herbert","serialNumber":"BK 01"}`,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"fields":{"serialNumber":"serial"},"message":"validation failed"}`, strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().
		CreateItem(gomock.Any(), model.ItemRequest{Title: "Dune", Author: "Frank Herbert", SerialNumber: "BK-01"}).
		Return(model.Item{}, errors.Wrap(errs.ErrConflict, "items_serial_number_key"))
	w = serve(t, svc, request{
		method: http.MethodPost,
		target: "/api/v1/items",
		body:   `{"title":"Dune","author":"Frank Herbert","serialNumber":"BK-01"}`,
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateItemIgnoresAvailability(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	svc.EXPECT().
		UpdateItem(gomock.Any(), int64(7), model.ItemRequest{Title: "Dune", Author: "Frank Herbert", SerialNumber: "BK-01"}).
		Return(model.Item{ID: 7, Title: "Dune", Author: "Frank Herbert", SerialNumber: "BK-01", Type: model.ItemTypeBook}, nil)
	w := serve(t, svc, request{
		method: http.MethodPut,
		target: "/api/v1/items/7",
		body:   `{"title":"Dune","author":"Frank Herbert","serialNumber":"BK-01","available":true}`,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"available":false`)
}

func TestHandler_Memberships(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	svc.EXPECT().
		GetMembership(gomock.Any(), "MEM-000000-000").
		Return(model.MembershipDetails{}, errs.ErrNotFound)
	w := serve(t, svc, request{method: http.MethodGet, target: "/api/v1/memberships/MEM-000000-000"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, svc, request{
		method: http.MethodPatch,
		target: "/api/v1/memberships/MEM-000000-000",
		body:   `{"action":"renew"}`,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	svc.EXPECT().
		UpdateMembership(gomock.Any(), "MEM-123456-042", model.UpdateMembershipRequest{Action: model.ActionExtend, Duration: 6}).
		Return(model.Membership{
			ID:               4,
			UserID:           caller.ID,
			MembershipNumber: "MEM-123456-042",
			StartDate:        model.NewDate(2024, 1, 1),
			EndDate:          model.NewDate(2025, 1, 1),
			Status:           model.MembershipActive,
		}, nil)
	w = serve(t, svc, request{
		method: http.MethodPatch,
		target: "/api/v1/memberships/MEM-123456-042",
		body:   `{"action":"extend","duration":6}`,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"endDate":"2025-01-01"`)
}

func TestHandler_RequireAdmin(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	svc.EXPECT().IsAdmin(gomock.Any(), caller).Return(false, nil)
	w := serve(t, svc, request{method: http.MethodGet, target: "/api/v1/admin/users"})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, `{"message":"forbidden"}`, strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().IsAdmin(gomock.Any(), caller).Return(true, nil)
	svc.EXPECT().Reconcile(gomock.Any()).Return(model.ReconcileResult{MarkedUnavailable: 1, MarkedAvailable: 2}, nil)
	w = serve(t, svc, request{method: http.MethodPost, target: "/api/v1/maintenance/reconcile"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"markedUnavailable":1,"markedAvailable":2}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_TransactionReport(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, request{method: http.MethodGet, target: "/api/v1/reports/transactions?startDate=2024-13-01"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"startDate is invalid"}`, strings.Trim(w.Body.String(), "\n"))

	start := model.NewDate(2024, 1, 1)
	svc.EXPECT().
		TransactionReport(gomock.Any(), model.ReportFilter{StartDate: &start, Status: model.StatusReturned}).
		Return(model.TransactionReport{
			Rows:       []model.ReportRow{},
			TotalFines: 0,
			Summary:    model.ReportSummary{Returned: 0},
		}, nil)
	w = serve(t, svc, request{method: http.MethodGet, target: "/api/v1/reports/transactions?startDate=2024-01-01&status=returned"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"rows":[],"totalFines":0,"summary":{"open":0,"returned":0,"overdue":0,"unpaidFines":0}}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	svc.EXPECT().Dashboard(gomock.Any()).
		Return(model.DashboardStats{TotalItems: 12, IssuedItems: 3, ActiveMemberships: 5}, nil)
	w := serve(t, svc, request{method: http.MethodGet, target: "/api/v1/reports/dashboard"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"totalItems":12,"issuedItems":3,"activeMemberships":5}`, strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().Dashboard(gomock.Any()).Return(model.DashboardStats{}, errors.New("connection reset"))
	w = serve(t, svc, request{method: http.MethodGet, target: "/api/v1/reports/dashboard"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(t, svc, request{method: http.MethodGet, target: "/api/v1/reports/dashboard", noAuth: true})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()

	w := serve(t, service_mocks.NewMockLibraryService(c), request{method: http.MethodGet, target: "/manage/health", noAuth: true})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
