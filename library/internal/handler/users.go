package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-desk/library/internal/model"
)

// Me returns the caller's user record, creating it on first call.
func (h *Handler) Me(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return err
	}
	u, err := h.librarySvc.EnsureUser(c.Request().Context(), ident)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.librarySvc.ListUsers(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.UserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.librarySvc.CreateUser(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	var req model.UserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.librarySvc.UpdateUser(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, u)
}
