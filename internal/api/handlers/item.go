package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"enhancives/internal/api/dto"
	"enhancives/internal/api/middleware"
	"enhancives/internal/api/services"
	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

type ItemHandler struct {
	itemService *services.ItemService
}

func NewItemHandler(store repository.Store, rdb *goredis.Client) *ItemHandler {
	totals := services.NewTotalsService(store, rdb)
	return &ItemHandler{
		itemService: services.NewItemService(store, totals),
	}
}

// GetItems godoc
// @Summary List items
// @Description Get the authenticated user's item catalog
// @Tags items
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.Item
// @Failure 401 {object} map[string]string
// @Router /api/items [get]
func (h *ItemHandler) GetItems(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	items, err := h.itemService.List(c.Request().Context(), username)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.ItemsFromDomain(items))
}

// CreateItem godoc
// @Summary Create an item
// @Description Add an item with 1-6 enhancive targets
// @Tags items
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.ItemRequest true "Item"
// @Success 200 {object} dto.Item
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/items [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.ItemRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	item, err := h.itemService.Create(c.Request().Context(), req.ToDomain(username, uuid.Nil))
	if err != nil {
		return itemErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dto.ItemFromDomain(item))
}

// UpdateItem godoc
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Item id"
// @Param request body dto.ItemRequest true "Item"
// @Success 200 {object} dto.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/items/{id} [put]
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid item id")
	}

	var req dto.ItemRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	item, err := h.itemService.Update(c.Request().Context(), req.ToDomain(username, id))
	if err != nil {
		return itemErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, dto.ItemFromDomain(item))
}

// DeleteItem godoc
// @Summary Delete an item
// @Description Delete an item; any equipment slot holding it is cleared
// @Tags items
// @Produce json
// @Security Bearer
// @Param id path string true "Item id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid item id")
	}

	if err := h.itemService.Delete(c.Request().Context(), username, id); err != nil {
		return itemErrorResponse(c, err)
	}

	return SuccessResponse(c, "item deleted")
}

func itemErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrItemNotFound):
		return ErrNotFound(c, "item not found")
	case errors.Is(err, domain.ErrNoTargets),
		errors.Is(err, domain.ErrTooManyTargets),
		errors.Is(err, domain.ErrBadPermanence),
		errors.Is(err, domain.ErrItemNameMissing):
		return ErrBadRequest(c, err.Error())
	default:
		return ErrInternalServerError(c)
	}
}
