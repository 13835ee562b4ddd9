package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/errors"
	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	backupUsecase "github.com/johnquangdev/lti-omt/internal/usecase/backup"
)

// Backup handles backup download and restore requests
type Backup struct {
	backupService backupUsecase.Service
	logger        *zap.Logger
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService backupUsecase.Service, logger *zap.Logger) *Backup {
	return &Backup{
		backupService: backupService,
		logger:        logger,
	}
}

// BackupFilename names the downloaded envelope after the day of its timestamp
func BackupFilename(timestamp string) string {
	day := timestamp
	if len(day) > 10 {
		day = day[:10]
	}
	return fmt.Sprintf("lti-omt-backup-%s.json", day)
}

// Download handles GET /backup
// @Summary      Download a backup
// @Description  Snapshots saved people, meeting people, saved meetings and the current meeting
// @Tags         Backup
// @Produce      json
// @Success      200  {object}  entities.BackupEnvelope  "Backup envelope"
// @Failure      500  {object}  map[string]interface{}  "Snapshot failed"
// @Router       /backup [get]
func (h *Backup) Download(c echo.Context) error {
	ctx := c.Request().Context()

	env, err := h.backupService.Create(ctx)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("backup", err))
	}
	body, err := h.backupService.Encode(env)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", BackupFilename(env.Timestamp)))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
}

// Restore handles POST /backup/restore
// @Summary      Restore a backup
// @Description  Overwrites every collection the envelope carries; null or missing entries are left untouched
// @Tags         Backup
// @Accept       json
// @Produce      json
// @Param        request  body      entities.BackupEnvelope  true  "Backup envelope"
// @Success      200      {object}  backup.RestoreOutput  "Restored collections"
// @Failure      400      {object}  map[string]interface{}  "Invalid backup"
// @Failure      500      {object}  map[string]interface{}  "Restore failed"
// @Router       /backup/restore [post]
func (h *Backup) Restore(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.backupService.Restore(c.Request().Context(), body)
	if err != nil {
		if stdErrors.Is(err, entities.ErrInvalidBackup) {
			return HandleError(h.logger, c, toAppError(err))
		}
		return HandleError(h.logger, c, errors.ErrBackupRestoreFailed(err))
	}
	return HandleSuccess(h.logger, c, out)
}
