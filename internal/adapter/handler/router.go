package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/lti-omt/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	meetingHandler    *Meeting
	exportHandler     *Export
	analysisHandler   *Analysis
	validationHandler *Validation
	backupHandler     *Backup
	stateHandler      *State
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	meetingHandler *Meeting,
	exportHandler *Export,
	analysisHandler *Analysis,
	validationHandler *Validation,
	backupHandler *Backup,
	stateHandler *State,
) *Router {
	return &Router{
		cfg:               cfg,
		meetingHandler:    meetingHandler,
		exportHandler:     exportHandler,
		analysisHandler:   analysisHandler,
		validationHandler: validationHandler,
		backupHandler:     backupHandler,
		stateHandler:      stateHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupExportRoutes(v1)
	rt.setupAnalysisRoutes(v1)
	rt.setupValidationRoutes(v1)
	rt.setupBackupRoutes(v1)
	rt.setupStateRoutes(v1)
}

// setupMeetingRoutes configures saved-meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.GET("/:index", rt.meetingHandler.GetMeeting)
	meetings.DELETE("/:index", rt.meetingHandler.DeleteMeeting)
	meetings.GET("/:index/statistics", rt.meetingHandler.GetStatistics)
	meetings.GET("/:index/export/pdf", rt.exportHandler.ExportMeetingPDF)
	meetings.GET("/:index/export/xlsx", rt.exportHandler.ExportMeetingXLSX)
}

// setupExportRoutes configures exports of posted records and the archive
func (rt *Router) setupExportRoutes(g *echo.Group) {
	exports := g.Group("/exports")
	exports.POST("/pdf", rt.exportHandler.ExportPDF)
	exports.POST("/xlsx", rt.exportHandler.ExportXLSX)
	exports.GET("/archive", rt.exportHandler.ListArchive)
}

func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	g.POST("/statistics", rt.analysisHandler.ComputeStatistics)
	g.POST("/isolations/related", rt.analysisHandler.FindRelated)
}

func (rt *Router) setupValidationRoutes(g *echo.Group) {
	validate := g.Group("/validate")
	validate.POST("/meeting", rt.validationHandler.ValidateMeeting)
	validate.POST("/isolation", rt.validationHandler.ValidateIsolation)
	validate.POST("/response", rt.validationHandler.ValidateResponse)

	g.POST("/uploads/validate", rt.validationHandler.ValidateUpload)
}

func (rt *Router) setupBackupRoutes(g *echo.Group) {
	g.GET("/backup", rt.backupHandler.Download)
	g.POST("/backup/restore", rt.backupHandler.Restore)
}

func (rt *Router) setupStateRoutes(g *echo.Group) {
	g.GET("/state/:collection", rt.stateHandler.GetState)
	g.PUT("/state/:collection", rt.stateHandler.PutState)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
		"backend":     rt.cfg.State.Backend,
		"archive":     rt.cfg.Storage.Enabled,
	})
}
