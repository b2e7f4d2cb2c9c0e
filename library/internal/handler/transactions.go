package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-desk/library/internal/model"
)

// IssueItem godoc
// @Summary lend an available item to the caller
// @Tags transactions
// @Param request body model.IssueRequest true "issue"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /api/v1/transactions/issue [post]
func (h *Handler) IssueItem(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	var req model.IssueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	t, err := h.librarySvc.IssueItem(c.Request().Context(), ident, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) ListOpenTransactions(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	list, err := h.librarySvc.ListOpenTransactions(c.Request().Context(), ident)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetTransaction(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	t, err := h.librarySvc.GetTransaction(c.Request().Context(), ident, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// ReturnItem godoc
// @Summary return an issued item and compute the fine
// @Tags transactions
// @Param id path int true "transaction id"
// @Param request body model.ReturnRequest false "actual return date, today when empty"
// @Success 200 {object} model.ReturnResult
// @Failure 409 {object} echo.HTTPError
// @Router /api/v1/transactions/{id}/return [post]
func (h *Handler) ReturnItem(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.ReturnRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.ReturnItem(c.Request().Context(), ident, id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// SettleFine godoc
// @Summary confirm fine payment of a returned transaction
// @Tags transactions
// @Param id path int true "transaction id"
// @Param request body model.SettleFineRequest true "payment"
// @Success 200 {object} model.Transaction
// @Failure 422 {object} echo.HTTPError
// @Router /api/v1/transactions/{id}/fine [post]
func (h *Handler) SettleFine(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.SettleFineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	t, err := h.librarySvc.SettleFine(c.Request().Context(), ident, id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, t)
}
