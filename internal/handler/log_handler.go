package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lionreport/internal/errors"
	"lionreport/internal/service"
)

// LogHandler handles daily log endpoints.
type LogHandler struct {
	logService service.LogService
}

// NewLogHandler creates a new daily log handler.
func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// DailyLogRequest represents a daily log submission or edit.
type DailyLogRequest struct {
	Date          string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Achievements  string `json:"achievements" validate:"required"`
	Issues        string `json:"issues"`
	Opportunities string `json:"opportunities"`
	NextDayTasks  string `json:"next_day_tasks" validate:"required"`
}

func (r *DailyLogRequest) fields() service.LogFields {
	return service.LogFields{
		Achievements:  r.Achievements,
		Issues:        r.Issues,
		Opportunities: r.Opportunities,
		NextDayTasks:  r.NextDayTasks,
	}
}

// Submit godoc
// @Summary Submit today's daily log (updates the existing one if present)
// @Tags logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DailyLogRequest true "Log fields"
// @Success 200 {object} model.DailyLog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logs [post]
func (h *LogHandler) Submit(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req DailyLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid date, expected YYYY-MM-DD",
				Code:  "INVALID_DATE",
			})
		}
	}

	log, err := h.logService.Submit(c.Request().Context(), userID, date, req.fields())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, log)
}

// Update godoc
// @Summary Edit an existing daily log
// @Tags logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Log ID"
// @Param request body DailyLogRequest true "Log fields"
// @Success 200 {object} model.DailyLog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /logs/{id} [put]
func (h *LogHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid log id",
			Code:  "INVALID_UUID",
		})
	}

	var req DailyLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	log, err := h.logService.Update(c.Request().Context(), userID, logID, req.fields())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, log)
}

// List godoc
// @Summary List the caller's daily logs, newest first
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DailyLog
// @Failure 401 {object} errors.ErrorResponse
// @Router /logs [get]
func (h *LogHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	logs, err := h.logService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, logs)
}

// Export godoc
// @Summary Download the caller's daily logs as an XLSX workbook
// @Tags logs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} errors.ErrorResponse
// @Router /logs/export [get]
func (h *LogHandler) Export(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	data, err := h.logService.ExportXLSX(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="daily_logs.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
