package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"enhancives/internal/api/dto"
	"enhancives/internal/api/middleware"
	"enhancives/internal/api/services"
	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

type MarketplaceHandler struct {
	marketplaceService *services.MarketplaceService
}

func NewMarketplaceHandler(store repository.Store) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceService: services.NewMarketplaceService(store),
	}
}

// Browse godoc
// @Summary Browse the marketplace
// @Description All available listings across every user
// @Tags marketplace
// @Produce json
// @Success 200 {array} dto.Listing
// @Router /api/marketplace [get]
func (h *MarketplaceHandler) Browse(c echo.Context) error {
	listings, err := h.marketplaceService.Browse(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.ListingsFromDomain(listings))
}

// MyListings godoc
// @Summary List the caller's own listings
// @Tags marketplace
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.Listing
// @Failure 401 {object} map[string]string
// @Router /api/marketplace/mine [get]
func (h *MarketplaceHandler) MyListings(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	listings, err := h.marketplaceService.MyListings(c.Request().Context(), username)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.ListingsFromDomain(listings))
}

// Sync godoc
// @Summary Sync the caller's listings
// @Description Replaces the caller's published listings with the submitted set
// @Tags marketplace
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.SyncRequest true "Listings"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/marketplace/sync [post]
func (h *MarketplaceHandler) Sync(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.SyncRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	listings := make([]*domain.Listing, len(req.Listings))
	for i := range req.Listings {
		listings[i] = req.Listings[i].ToDomain(username)
	}

	if err := h.marketplaceService.Sync(c.Request().Context(), username, listings); err != nil {
		if errors.Is(err, domain.ErrTooManyTargets) {
			return ErrBadRequest(c, err.Error())
		}
		return ErrInternalServerError(c)
	}

	return SuccessResponse(c, "listings synced")
}
