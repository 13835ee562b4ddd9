package handler

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/errors"
	dto "github.com/johnquangdev/lti-omt/internal/adapter/dto/meeting"
	"github.com/johnquangdev/lti-omt/internal/adapter/presenter"
	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/lti-omt/internal/usecase/meeting"
	"github.com/johnquangdev/lti-omt/internal/usecase/stats"
)

// Meeting handles saved-meeting HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// ListMeetings handles GET /meetings
// @Summary      List saved meetings
// @Description  Summarizes every saved meeting with its shape and statistics
// @Tags         Meetings
// @Produce      json
// @Success      200  {array}   meeting.Summary  "Saved meetings"
// @Failure      500  {object}  map[string]interface{}  "Failed to load meetings"
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	list, err := h.meetingService.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, toAppError(err))
	}
	return HandleSuccess(h.logger, c, list)
}

// GetMeeting handles GET /meetings/:index
// @Summary      Get a saved meeting
// @Description  Returns the saved meeting record exactly as stored
// @Tags         Meetings
// @Produce      json
// @Param        index  path      int  true  "Meeting index"
// @Success      200    {object}  map[string]interface{}  "Meeting record"
// @Failure      404    {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{index} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	index, err := parseIndex(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	raw, err := h.meetingService.Get(c.Request().Context(), index)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, index))
	}
	return HandleSuccess(h.logger, c, json.RawMessage(raw))
}

// CreateMeeting handles POST /meetings
// @Summary      Save a meeting
// @Description  Validates a meeting record, stores its statistics with it and appends it to the history
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Meeting record"
// @Success      201      {object}  meeting.SaveMeetingResponse  "Meeting saved"
// @Failure      400      {object}  map[string]interface{}  "Malformed record"
// @Failure      422      {object}  map[string]interface{}  "Validation failed"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.meetingService.Save(c.Request().Context(), body)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err))
	}

	return HandleSuccessWithStatus(h.logger, c, http.StatusCreated, &dto.SaveMeetingResponse{
		Index:       out.Index,
		MeetingData: out.MeetingData,
	})
}

// DeleteMeeting handles DELETE /meetings/:index
// @Summary      Delete a saved meeting
// @Tags         Meetings
// @Produce      json
// @Param        index  path      int  true  "Meeting index"
// @Success      200    {object}  map[string]interface{}  "Meeting deleted"
// @Failure      404    {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{index} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	index, err := parseIndex(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.Delete(c.Request().Context(), index); err != nil {
		return HandleError(h.logger, c, h.mapError(err, index))
	}
	return HandleSuccess(h.logger, c, map[string]int{"deleted": index})
}

// GetStatistics handles GET /meetings/:index/statistics
// @Summary      Statistics of a saved meeting
// @Description  Returns the stored statistics block, or recomputes it for older records
// @Tags         Meetings
// @Produce      json
// @Param        index  path      int  true  "Meeting index"
// @Success      200    {object}  meeting.StatisticsResponse  "Meeting statistics"
// @Failure      404    {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{index}/statistics [get]
func (h *Meeting) GetStatistics(c echo.Context) error {
	index, err := parseIndex(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.Normalized(c.Request().Context(), index)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, index))
	}

	var data *entities.MeetingData
	if md, ok := stats.FromMeeting(m); ok {
		data = &md
	}
	return HandleSuccess(h.logger, c, presenter.ToStatisticsResponse(m, data))
}

func (h *Meeting) mapError(err error, index int) error {
	if stdErrors.Is(err, entities.ErrMeetingNotFound) {
		return errors.ErrMeetingNotFound(index)
	}
	return toAppError(err)
}
