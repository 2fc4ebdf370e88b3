package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"enhancives/internal/api/middleware"
	"enhancives/internal/api/services"
	"enhancives/internal/repository"
)

type TotalsHandler struct {
	totalsService *services.TotalsService
}

func NewTotalsHandler(store repository.Store, rdb *goredis.Client) *TotalsHandler {
	return &TotalsHandler{
		totalsService: services.NewTotalsService(store, rdb),
	}
}

// GetTotals godoc
// @Summary Get enhancement totals
// @Description Aggregate bonus per target across all equipped items
// @Tags totals
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string
// @Router /api/totals [get]
func (h *TotalsHandler) GetTotals(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	totals, err := h.totalsService.Totals(c.Request().Context(), username)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, totals)
}

// GetAnalysis godoc
// @Summary Get cap analysis
// @Description Totals classified against caps, with status counts and gaps
// @Tags totals
// @Produce json
// @Security Bearer
// @Success 200 {object} services.Analysis
// @Failure 401 {object} map[string]string
// @Router /api/totals/analysis [get]
func (h *TotalsHandler) GetAnalysis(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	analysis, err := h.totalsService.Analysis(c.Request().Context(), username)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, analysis)
}
