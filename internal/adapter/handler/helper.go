package handler

import (
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/errors"
	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/usecase/backup"
	ucerrors "github.com/johnquangdev/lti-omt/internal/usecase/errors"
	"github.com/johnquangdev/lti-omt/internal/usecase/export"
)

// MaxBodyBytes bounds JSON request bodies
const MaxBodyBytes = 16 << 20

// Response shapes
type success struct {
	Code    interface{} `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID reads X-Request-ID from the request, then from the response set by middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return HandleSuccessWithStatus(logger, c, http.StatusOK, data)
}

// HandleSuccessWithStatus is HandleSuccess with an explicit status code
func HandleSuccessWithStatus(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// toAppError maps usecase and domain errors onto the HTTP error taxonomy
func toAppError(err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return err
	}

	var verr *ucerrors.ValidationError
	var berr *backup.InvalidBackupError
	switch {
	case stdErrors.As(err, &verr):
		return errors.ErrValidationFailed(verr.Errors)
	case stdErrors.As(err, &berr):
		return errors.ErrBackupInvalid(berr)
	case stdErrors.Is(err, entities.ErrInvalidBackup):
		return errors.ErrBackupInvalid(err)
	case stdErrors.Is(err, entities.ErrMalformedMeeting):
		return errors.ErrMalformedMeeting(err)
	case stdErrors.Is(err, entities.ErrCollectionNotFound):
		return errors.ErrNotFound("Collection")
	case stdErrors.Is(err, entities.ErrNoExportData):
		return errors.ErrExportNoData("")
	case stdErrors.Is(err, ucerrors.ErrArchiveDisabled):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, ucerrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	}
	return errors.ErrInternal(err)
}

// readBody reads a bounded request body
func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, MaxBodyBytes+1))
	if err != nil {
		return nil, errors.ErrInvalidPayload()
	}
	if len(body) > MaxBodyBytes {
		return nil, errors.ErrInvalidArgument(fmt.Sprintf("request body exceeds %d bytes", MaxBodyBytes))
	}
	if len(body) == 0 {
		return nil, errors.ErrInvalidPayload()
	}
	return body, nil
}

// parseIndex reads the :index path parameter
func parseIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, errors.ErrInvalidArgument("meeting index must be a non-negative integer")
	}
	return index, nil
}

// attachment streams an artifact as a file download
func attachment(c echo.Context, artifact *export.Artifact) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	return c.Blob(http.StatusOK, artifact.ContentType, artifact.Content)
}
