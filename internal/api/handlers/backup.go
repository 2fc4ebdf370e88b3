package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"enhancives/internal/api/middleware"
	"enhancives/internal/api/services"
	"enhancives/internal/domain"
	"enhancives/internal/repository"
)

type BackupHandler struct {
	backupService *services.BackupService
}

func NewBackupHandler(store repository.Store, rdb *goredis.Client) *BackupHandler {
	totals := services.NewTotalsService(store, rdb)
	return &BackupHandler{
		backupService: services.NewBackupService(store, totals),
	}
}

// Export godoc
// @Summary Export the item catalog and equipment index
// @Tags backup
// @Produce json
// @Security Bearer
// @Success 200 {object} services.BackupEnvelope
// @Failure 401 {object} map[string]string
// @Router /api/backup/export [get]
func (h *BackupHandler) Export(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	envelope, err := h.backupService.Export(c.Request().Context(), username)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, envelope)
}

// Import godoc
// @Summary Import a previously exported backup
// @Description Merges items by name and target set; duplicates are skipped
// @Tags backup
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body services.BackupEnvelope true "Backup payload"
// @Success 200 {object} services.ImportResult
// @Failure 400 {object} map[string]string
// @Router /api/backup/import [post]
func (h *BackupHandler) Import(c echo.Context) error {
	username, err := middleware.GetUsernameFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var envelope services.BackupEnvelope
	if err := c.Bind(&envelope); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}

	result, err := h.backupService.Import(c.Request().Context(), username, &envelope)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoTargets),
			errors.Is(err, domain.ErrTooManyTargets),
			errors.Is(err, domain.ErrBadPermanence),
			errors.Is(err, domain.ErrItemNameMissing):
			return ErrBadRequest(c, err.Error())
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusOK, result)
}
