package handler

import (
	"encoding/json"
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/errors"
	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/lti-omt/internal/usecase/meeting"
)

// State exposes the working-set collections of the meeting in progress
type State struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewStateHandler creates a new state handler
func NewStateHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *State {
	return &State{
		meetingService: meetingService,
		logger:         logger,
	}
}

// GetState handles GET /state/:collection
// @Summary      Read a working-set collection
// @Tags         State
// @Produce      json
// @Param        collection  path      string  true  "Collection name"
// @Success      200         {object}  map[string]interface{}  "Stored value"
// @Failure      400         {object}  map[string]interface{}  "Unsupported collection"
// @Failure      404         {object}  map[string]interface{}  "Collection not found"
// @Router       /state/{collection} [get]
func (h *State) GetState(c echo.Context) error {
	collection := entities.Collection(c.Param("collection"))

	raw, err := h.meetingService.GetState(c.Request().Context(), collection)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err, collection))
	}
	return HandleSuccess(h.logger, c, json.RawMessage(raw))
}

// PutState handles PUT /state/:collection
// @Summary      Replace a working-set collection
// @Description  Stores the body verbatim; people lists are sanitized first
// @Tags         State
// @Accept       json
// @Produce      json
// @Param        collection  path      string  true  "Collection name"
// @Param        request     body      object  true  "New value"
// @Success      200         {object}  map[string]interface{}  "Stored"
// @Failure      400         {object}  map[string]interface{}  "Unsupported collection or invalid value"
// @Router       /state/{collection} [put]
func (h *State) PutState(c echo.Context) error {
	collection := entities.Collection(c.Param("collection"))

	body, err := readBody(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.PutState(c.Request().Context(), collection, body); err != nil {
		return HandleError(h.logger, c, h.mapError(err, collection))
	}
	return HandleSuccess(h.logger, c, map[string]string{"collection": string(collection)})
}

func (h *State) mapError(err error, collection entities.Collection) error {
	if stdErrors.Is(err, entities.ErrUnknownCollection) {
		return errors.ErrUnsupportedCollection(string(collection))
	}
	return toAppError(err)
}
