package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/errors"
	dto "github.com/johnquangdev/lti-omt/internal/adapter/dto/meeting"
	"github.com/johnquangdev/lti-omt/internal/adapter/presenter"
	"github.com/johnquangdev/lti-omt/internal/usecase/relation"
	"github.com/johnquangdev/lti-omt/internal/usecase/shape"
	"github.com/johnquangdev/lti-omt/internal/usecase/stats"
)

// Analysis handles statistics and relationship queries on unsaved records
type Analysis struct {
	logger *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(logger *zap.Logger) *Analysis {
	return &Analysis{logger: logger}
}

// ComputeStatistics handles POST /statistics
// @Summary      Compute meeting statistics
// @Description  Aggregates the executive summary and risk distribution of a posted record
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Meeting record"
// @Success      200      {object}  meeting.StatisticsResponse  "Computed statistics"
// @Failure      400      {object}  map[string]interface{}  "Malformed record"
// @Router       /statistics [post]
func (h *Analysis) ComputeStatistics(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := shape.Normalize(body)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err))
	}

	data := stats.Aggregate(m.AggregateResponses(), m.Info(), m.ListedIsolations())
	return HandleSuccess(h.logger, c, presenter.ToStatisticsResponse(m, &data))
}

// FindRelated handles POST /isolations/related
// @Summary      Find related isolations
// @Description  Lists the isolations sharing the target's system code
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.RelatedRequest  true  "Target and candidates"
// @Success      200      {object}  meeting.RelatedResponse  "Related isolations"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Router       /isolations/related [post]
func (h *Analysis) FindRelated(c echo.Context) error {
	var req dto.RelatedRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	target := presenter.ToIsolations([]dto.IsolationRef{req.Target})[0]
	related := relation.FindRelated(presenter.ToIsolations(req.Isolations), target)
	return HandleSuccess(h.logger, c, presenter.ToRelatedResponse(target, related))
}
