package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-desk/library/internal/model"
)

// ListItems godoc
// @Summary search the catalogue
// @Tags items
// @Param search query string false "substring to look for"
// @Param field query string false "title, author or serial_number"
// @Param available query bool false "availability filter"
// @Success 200 {array} model.Item
// @Router /api/v1/items [get]
func (h *Handler) ListItems(c echo.Context) error {
	filter := model.ItemFilter{
		Search: c.QueryParam("search"),
		Field:  model.SearchField(c.QueryParam("field")),
	}
	if p := c.QueryParam("available"); p != "" {
		available, err := strconv.ParseBool(p)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available is invalid")
		}
		filter.Available = &available
	}
	items, err := h.librarySvc.ListItems(c.Request().Context(), filter)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetItem(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	item, err := h.librarySvc.GetItem(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// CreateItem godoc
// @Summary add a book or movie
// @Tags items
// @Param request body model.ItemRequest true "item"
// @Success 201 {object} model.Item
// @Failure 409 {object} echo.HTTPError
// @Router /api/v1/items [post]
func (h *Handler) CreateItem(c echo.Context) error {
	var req model.ItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.librarySvc.CreateItem(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req model.ItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.librarySvc.UpdateItem(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}
