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
	"enhancives/internal/repository"
)

type LoadoutHandler struct {
	loadoutService *services.LoadoutService
}

func NewLoadoutHandler(store repository.Store, rdb *goredis.Client) *LoadoutHandler {
	totals := services.NewTotalsService(store, rdb)
	return &LoadoutHandler{
		loadoutService: services.NewLoadoutService(store, totals),
	}
}

// GetLoadouts godoc
// @Summary List saved loadouts
// @Tags loadouts
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.Loadout
// @Failure 401 {object} map[string]string
// @Router /api/loadouts [get]
func (h *LoadoutHandler) GetLoadouts(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	loadouts, err := h.loadoutService.List(c.Request().Context(), username)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.LoadoutsFromDomain(loadouts))
}

// SaveLoadout godoc
// @Summary Save the current equipment as a named loadout
// @Description Replaces an existing loadout with the same name
// @Tags loadouts
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.SaveLoadoutRequest true "Loadout name"
// @Success 200 {object} dto.Loadout
// @Failure 400 {object} map[string]string
// @Router /api/loadouts [post]
func (h *LoadoutHandler) SaveLoadout(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.SaveLoadoutRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	loadout, err := h.loadoutService.Save(c.Request().Context(), username, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrLoadoutNameMissing) {
			return ErrBadRequest(c, "loadout name is required")
		}
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.LoadoutFromDomain(loadout))
}

// ApplyLoadout godoc
// @Summary Apply a loadout
// @Description Replaces the current equipment index with the loadout snapshot
// @Tags loadouts
// @Produce json
// @Security Bearer
// @Param id path string true "Loadout id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/loadouts/{id}/apply [post]
func (h *LoadoutHandler) ApplyLoadout(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid loadout id")
	}

	if err := h.loadoutService.Apply(c.Request().Context(), username, id); err != nil {
		if errors.Is(err, repository.ErrLoadoutNotFound) {
			return ErrNotFound(c, "loadout not found")
		}
		return ErrInternalServerError(c)
	}

	return SuccessResponse(c, "loadout applied")
}

// DeleteLoadout godoc
// @Summary Delete a loadout
// @Tags loadouts
// @Produce json
// @Security Bearer
// @Param id path string true "Loadout id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/loadouts/{id} [delete]
func (h *LoadoutHandler) DeleteLoadout(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid loadout id")
	}

	if err := h.loadoutService.Delete(c.Request().Context(), username, id); err != nil {
		if errors.Is(err, repository.ErrLoadoutNotFound) {
			return ErrNotFound(c, "loadout not found")
		}
		return ErrInternalServerError(c)
	}

	return SuccessResponse(c, "loadout deleted")
}
