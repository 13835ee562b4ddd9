package handler

import (
	stdErrors "errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/errors"
	dto "github.com/johnquangdev/lti-omt/internal/adapter/dto/meeting"
	"github.com/johnquangdev/lti-omt/internal/adapter/presenter"
	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	archiveUsecase "github.com/johnquangdev/lti-omt/internal/usecase/archive"
	ucerrors "github.com/johnquangdev/lti-omt/internal/usecase/errors"
	"github.com/johnquangdev/lti-omt/internal/usecase/export"
	meetingUsecase "github.com/johnquangdev/lti-omt/internal/usecase/meeting"
	"github.com/johnquangdev/lti-omt/internal/usecase/shape"
)

// Header set on archived downloads
const HeaderArchiveObject = "X-Archive-Object"

const (
	formatPDF  = "pdf"
	formatXLSX = "xlsx"
)

// Export handles document export HTTP requests
type Export struct {
	meetingService meetingUsecase.Service
	pdf            *export.PDFExporter
	spreadsheet    *export.SpreadsheetExporter
	archive        archiveUsecase.Service // nil when archiving is disabled
	logger         *zap.Logger
}

// NewExportHandler creates a new export handler. archive may be nil.
func NewExportHandler(
	meetingService meetingUsecase.Service,
	pdf *export.PDFExporter,
	spreadsheet *export.SpreadsheetExporter,
	archive archiveUsecase.Service,
	logger *zap.Logger,
) *Export {
	return &Export{
		meetingService: meetingService,
		pdf:            pdf,
		spreadsheet:    spreadsheet,
		archive:        archive,
		logger:         logger,
	}
}

// ExportMeetingPDF handles GET /meetings/:index/export/pdf
// @Summary      Export a saved meeting as PDF
// @Tags         Exports
// @Produce      application/pdf
// @Param        index    path   int   true   "Meeting index"
// @Param        archive  query  bool  false  "Keep a copy in the export archive"
// @Success      200  {file}    binary  "PDF report"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Failure      500  {object}  map[string]interface{}  "Export failed"
// @Router       /meetings/{index}/export/pdf [get]
func (h *Export) ExportMeetingPDF(c echo.Context) error {
	m, err := h.savedMeeting(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.renderPDF(c, m)
}

// ExportMeetingXLSX handles GET /meetings/:index/export/xlsx
// @Summary      Export a saved meeting as a spreadsheet
// @Tags         Exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        index    path   int   true   "Meeting index"
// @Param        archive  query  bool  false  "Keep a copy in the export archive"
// @Success      200  {file}    binary  "Workbook"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Failure      422  {object}  map[string]interface{}  "Nothing to export"
// @Router       /meetings/{index}/export/xlsx [get]
func (h *Export) ExportMeetingXLSX(c echo.Context) error {
	m, err := h.savedMeeting(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.renderXLSX(c, m)
}

// ExportPDF handles POST /exports/pdf
// @Summary      Export a meeting record as PDF
// @Description  Renders the posted meeting record without saving it
// @Tags         Exports
// @Accept       json
// @Produce      application/pdf
// @Param        request  body   object  true   "Meeting record"
// @Param        archive  query  bool    false  "Keep a copy in the export archive"
// @Success      200  {file}    binary  "PDF report"
// @Failure      400  {object}  map[string]interface{}  "Malformed record"
// @Failure      500  {object}  map[string]interface{}  "Export failed"
// @Router       /exports/pdf [post]
func (h *Export) ExportPDF(c echo.Context) error {
	m, err := h.postedMeeting(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.renderPDF(c, m)
}

// ExportXLSX handles POST /exports/xlsx
// @Summary      Export a meeting record as a spreadsheet
// @Description  Writes the posted meeting record without saving it
// @Tags         Exports
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request  body   object  true   "Meeting record"
// @Param        archive  query  bool    false  "Keep a copy in the export archive"
// @Success      200  {file}    binary  "Workbook"
// @Failure      400  {object}  map[string]interface{}  "Malformed record"
// @Failure      422  {object}  map[string]interface{}  "Nothing to export"
// @Router       /exports/xlsx [post]
func (h *Export) ExportXLSX(c echo.Context) error {
	m, err := h.postedMeeting(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.renderXLSX(c, m)
}

// ListArchive handles GET /exports/archive
// @Summary      List archived exports
// @Description  Lists archived documents newest first with presigned download links
// @Tags         Exports
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of entries"
// @Success      200    {object}  export.ArchiveListResponse  "Archived exports"
// @Failure      400    {object}  map[string]interface{}  "Archive disabled or bad limit"
// @Router       /exports/archive [get]
func (h *Export) ListArchive(c echo.Context) error {
	if h.archive == nil {
		return HandleError(h.logger, c, toAppError(ucerrors.ErrArchiveDisabled))
	}

	var req dto.ListArchiveRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	records, err := h.archive.List(c.Request().Context(), req.Limit)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list archive", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToArchiveListResponse(records))
}

func (h *Export) savedMeeting(c echo.Context) (*entities.Meeting, error) {
	index, err := parseIndex(c)
	if err != nil {
		return nil, err
	}
	m, err := h.meetingService.Normalized(c.Request().Context(), index)
	if err != nil {
		if stdErrors.Is(err, entities.ErrMeetingNotFound) {
			return nil, errors.ErrMeetingNotFound(index)
		}
		return nil, toAppError(err)
	}
	return m, nil
}

func (h *Export) postedMeeting(c echo.Context) (*entities.Meeting, error) {
	body, err := readBody(c)
	if err != nil {
		return nil, err
	}
	m, err := shape.Normalize(body)
	if err != nil {
		return nil, toAppError(err)
	}
	return m, nil
}

func (h *Export) renderPDF(c echo.Context, m *entities.Meeting) error {
	res := h.pdf.ExportMeeting(c.Request().Context(), m)
	if !res.Success {
		return HandleError(h.logger, c, errors.ErrExportFailed(formatPDF, res.Message))
	}
	if res.Diagnostic {
		h.logger.Warn("PDF export found no isolations",
			zap.String("date", m.Date),
			zap.Strings("keys", m.TopLevelKeys),
		)
	}
	return h.deliver(c, res.Artifact)
}

func (h *Export) renderXLSX(c echo.Context, m *entities.Meeting) error {
	artifact, err := h.spreadsheet.ExportMeeting(c.Request().Context(), m)
	if err != nil {
		if stdErrors.Is(err, entities.ErrNoExportData) {
			return HandleError(h.logger, c, errors.ErrExportNoData(formatXLSX))
		}
		return HandleError(h.logger, c, errors.ErrExportFailed(formatXLSX, err.Error()))
	}
	return h.deliver(c, artifact)
}

// deliver archives the artifact when asked to, then streams it
func (h *Export) deliver(c echo.Context, artifact *export.Artifact) error {
	wantArchive, _ := strconv.ParseBool(c.QueryParam("archive"))
	if wantArchive {
		if h.archive == nil {
			return HandleError(h.logger, c, toAppError(ucerrors.ErrArchiveDisabled))
		}
		record, err := h.archive.Archive(c.Request().Context(), artifact)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrArchiveFailed(artifact.Filename, err))
		}
		c.Response().Header().Set(HeaderArchiveObject, record.ObjectName)
	}
	return attachment(c, artifact)
}
