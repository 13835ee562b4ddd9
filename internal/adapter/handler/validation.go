package handler

import (
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/errors"
	"github.com/johnquangdev/lti-omt/internal/usecase/validation"
)

// Validation handles record and upload validation requests
type Validation struct {
	logger *zap.Logger
}

// NewValidationHandler creates a new validation handler
func NewValidationHandler(logger *zap.Logger) *Validation {
	return &Validation{logger: logger}
}

// ValidateMeeting handles POST /validate/meeting
// @Summary      Validate a meeting record
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Meeting record"
// @Success      200      {object}  validation.Result  "Validation result"
// @Router       /validate/meeting [post]
func (h *Validation) ValidateMeeting(c echo.Context) error {
	return h.validate(c, validation.ValidateMeeting)
}

// ValidateIsolation handles POST /validate/isolation
// @Summary      Validate an isolation
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Isolation"
// @Success      200      {object}  validation.Result  "Validation result"
// @Router       /validate/isolation [post]
func (h *Validation) ValidateIsolation(c echo.Context) error {
	return h.validate(c, validation.ValidateIsolation)
}

// ValidateResponse handles POST /validate/response
// @Summary      Validate an isolation response
// @Tags         Validation
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Response"
// @Success      200      {object}  validation.Result  "Validation result"
// @Router       /validate/response [post]
func (h *Validation) ValidateResponse(c echo.Context) error {
	return h.validate(c, validation.ValidateResponse)
}

// ValidateUpload handles POST /uploads/validate
// @Summary      Validate a spreadsheet upload
// @Description  Checks size, type and name of an uploaded isolation list
// @Tags         Validation
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Spreadsheet"
// @Success      200   {object}  validation.Result  "Upload accepted"
// @Failure      422   {object}  map[string]interface{}  "Upload rejected"
// @Router       /uploads/validate [post]
func (h *Validation) ValidateUpload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("multipart field \"file\" is required"))
	}

	mime := fh.Header.Get(echo.HeaderContentType)
	if mime == "" || mime == echo.MIMEOctetStream {
		f, err := fh.Open()
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidPayload())
		}
		detected, err := mimetype.DetectReader(f)
		f.Close()
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidPayload())
		}
		mime = detected.String()
	}

	res := validation.ValidateFile(validation.FileInfo{
		Name:     fh.Filename,
		Size:     fh.Size,
		MimeType: mime,
	})
	if !res.IsValid {
		return HandleError(h.logger, c, errors.ErrUploadRejected(res.Errors))
	}
	return HandleSuccess(h.logger, c, res)
}

func (h *Validation) validate(c echo.Context, fn func([]byte) validation.Result) error {
	body, err := readBody(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, fn(body))
}
