package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-desk/library/internal/model"
)

// CreateMembership godoc
// @Summary open a membership for the caller
// @Tags memberships
// @Param request body model.CreateMembershipRequest true "membership"
// @Success 201 {object} model.Membership
// @Router /api/v1/memberships [post]
func (h *Handler) CreateMembership(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	var req model.CreateMembershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	m, err := h.librarySvc.CreateMembership(c.Request().Context(), ident, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListMemberships(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	list, err := h.librarySvc.ListMemberships(c.Request().Context(), ident)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetMembership(c echo.Context) error {
	m, err := h.librarySvc.GetMembership(c.Request().Context(), c.Param("number"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, m)
}

// UpdateMembership godoc
// @Summary extend or cancel a membership
// @Tags memberships
// @Param number path string true "membership number"
// @Param request body model.UpdateMembershipRequest true "action"
// @Success 200 {object} model.Membership
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/memberships/{number} [patch]
func (h *Handler) UpdateMembership(c echo.Context) error {
	var req model.UpdateMembershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	m, err := h.librarySvc.UpdateMembership(c.Request().Context(), c.Param("number"), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, m)
}
