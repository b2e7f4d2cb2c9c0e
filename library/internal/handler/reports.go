package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-desk/library/internal/model"
)

// TransactionReport godoc
// @Summary transactions report with totals
// @Tags reports
// @Param startDate query string false "issue date from, YYYY-MM-DD"
// @Param endDate query string false "issue date to, YYYY-MM-DD"
// @Param status query string false "issued or returned"
// @Param type query string false "book or movie"
// @Success 200 {object} model.TransactionReport
// @Router /api/v1/reports/transactions [get]
func (h *Handler) TransactionReport(c echo.Context) error {
	var filter model.ReportFilter
	for _, p := range []struct {
		name string
		dst  **model.Date
	}{
		{"startDate", &filter.StartDate},
		{"endDate", &filter.EndDate},
	} {
		v := c.QueryParam(p.name)
		if v == "" {
			continue
		}
		d, err := model.ParseDate(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, p.name+" is invalid")
		}
		*p.dst = &d
	}

	switch s := model.TransactionStatus(c.QueryParam("status")); s {
	case "", model.StatusIssued, model.StatusReturned:
		filter.Status = s
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
	}
	switch t := model.ItemType(c.QueryParam("type")); t {
	case "", model.ItemTypeBook, model.ItemTypeMovie:
		filter.Type = t
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "type is invalid")
	}

	report, err := h.librarySvc.TransactionReport(c.Request().Context(), filter)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// Dashboard godoc
// @Summary catalogue and membership counts
// @Tags reports
// @Success 200 {object} model.DashboardStats
// @Router /api/v1/reports/dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	stats, err := h.librarySvc.Dashboard(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListActivity(c echo.Context) error {
	var limit int
	if p := c.QueryParam("limit"); p != "" {
		var err error
		if limit, err = strconv.Atoi(p); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
		}
	}
	list, err := h.librarySvc.ListActivity(c.Request().Context(), limit)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// Reconcile godoc
// @Summary realign item availability with open transactions
// @Tags maintenance
// @Success 200 {object} model.ReconcileResult
// @Router /api/v1/maintenance/reconcile [post]
func (h *Handler) Reconcile(c echo.Context) error {
	res, err := h.librarySvc.Reconcile(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
