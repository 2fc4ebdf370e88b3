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

type EquipmentHandler struct {
	equipmentService *services.EquipmentService
}

func NewEquipmentHandler(store repository.Store, rdb *goredis.Client) *EquipmentHandler {
	totals := services.NewTotalsService(store, rdb)
	return &EquipmentHandler{
		equipmentService: services.NewEquipmentService(store, totals),
	}
}

// GetEquipment godoc
// @Summary Get the equipment index
// @Description Slot occupancy per wear location plus the resolved equipped items
// @Tags equipment
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.EquipmentView
// @Failure 401 {object} map[string]string
// @Router /api/equipment [get]
func (h *EquipmentHandler) GetEquipment(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	index, err := h.equipmentService.Index(c.Request().Context(), username)
	if err != nil {
		return ErrInternalServerError(c)
	}

	equipped, err := h.equipmentService.EquippedItems(c.Request().Context(), username)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.EquipmentViewFromDomain(index, equipped))
}

// GetSlotSchema godoc
// @Summary Get the wear-location slot schema
// @Tags equipment
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/equipment/slots [get]
func (h *EquipmentHandler) GetSlotSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.WearLocations)
}

// Equip godoc
// @Summary Equip an item into a slot
// @Description Places the item, displacing any previous occupant; an empty itemId clears the slot
// @Tags equipment
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.EquipRequest true "Placement"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/equipment/equip [post]
func (h *EquipmentHandler) Equip(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.EquipRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	itemID := uuid.Nil
	if req.ItemID != "" {
		itemID, err = uuid.Parse(req.ItemID)
		if err != nil {
			return ErrBadRequest(c, "invalid item id")
		}
	}

	err = h.equipmentService.Equip(c.Request().Context(), username, itemID, req.Location, req.Slot)
	if err != nil {
		return equipmentErrorResponse(c, err)
	}

	return SuccessResponse(c, "item equipped")
}

// Unequip godoc
// @Summary Empty a slot
// @Description Idempotent; unequipping an empty slot is a no-op
// @Tags equipment
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.UnequipRequest true "Slot"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/equipment/unequip [post]
func (h *EquipmentHandler) Unequip(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.UnequipRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	err = h.equipmentService.Unequip(c.Request().Context(), username, req.Location, req.Slot)
	if err != nil {
		return equipmentErrorResponse(c, err)
	}

	return SuccessResponse(c, "slot cleared")
}

func equipmentErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownLocation):
		return ErrBadRequest(c, "unknown wear location")
	case errors.Is(err, domain.ErrSlotOutOfRange):
		return ErrBadRequest(c, "slot index out of range")
	case errors.Is(err, services.ErrItemNotOwned):
		return ErrNotFound(c, "item not found")
	case errors.Is(err, repository.ErrItemNotFound):
		return ErrNotFound(c, "item not found")
	default:
		return ErrInternalServerError(c)
	}
}
