package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-fetcher/service"
)

// FetchHandler exposes the pipeline over the ops HTTP surface: a manual
// trigger and the scheduled job's status.
type FetchHandler struct {
	pipeline  service.NewsPipeline
	scheduler JobScheduler
	logger    *slog.Logger
}

// NewFetchHandler creates a new fetch handler.
func NewFetchHandler(pipeline service.NewsPipeline, scheduler JobScheduler, logger *slog.Logger) *FetchHandler {
	return &FetchHandler{
		pipeline:  pipeline,
		scheduler: scheduler,
		logger:    logger,
	}
}

// HandleTriggerFetch runs one pipeline invocation inline and returns its
// result. The run's success flag travels in the body, not the status code.
func (h *FetchHandler) HandleTriggerFetch(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.InfoContext(ctx, "manual news fetch triggered")

	result := h.pipeline.Run(ctx)

	return c.JSON(http.StatusOK, result)
}

type jobStatusResponse struct {
	Name       string  `json:"name"`
	IsRunning  bool    `json:"is_running"`
	LastRun    *string `json:"last_run"`
	NextRun    *string `json:"next_run"`
	ErrorCount int     `json:"error_count"`
	LastError  string  `json:"last_error,omitempty"`
}

// HandleJobStatus reports the scheduled job's status.
func (h *FetchHandler) HandleJobStatus(c echo.Context) error {
	status, err := h.scheduler.GetJobStatus(NewsFetchJobName)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "news fetch job is not scheduled")
	}

	resp := jobStatusResponse{
		Name:       status.Name,
		IsRunning:  status.IsRunning,
		LastRun:    status.LastRun,
		NextRun:    status.NextRun,
		ErrorCount: status.ErrorCount,
	}

	if status.LastError != nil {
		resp.LastError = status.LastError.Error()
	}

	return c.JSON(http.StatusOK, resp)
}
