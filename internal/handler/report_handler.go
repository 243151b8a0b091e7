package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lionreport/internal/errors"
	"lionreport/internal/model"
	"lionreport/internal/service"
)

// ReportHandler handles weekly report endpoints.
type ReportHandler struct {
	reportService service.ReportService
	dispatcher    service.Dispatcher
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService, dispatcher service.Dispatcher) *ReportHandler {
	return &ReportHandler{reportService: reportService, dispatcher: dispatcher}
}

// SendReportRequest carries the four report sections, usually the
// composed preview after user edits.
type SendReportRequest struct {
	LastWeek      string `json:"last_week" validate:"required"`
	Issues        string `json:"issues"`
	Opportunities string `json:"opportunities"`
	NextWeek      string `json:"next_week" validate:"required"`
}

// SendReportResponse represents the outcome of a send.
type SendReportResponse struct {
	ReportID   string `json:"report_id"`
	Recipients string `json:"recipients"`
	Message    string `json:"message"`
}

// Preview godoc
// @Summary Compose a summary of the previous work week's logs
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Summary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports/preview [get]
func (h *ReportHandler) Preview(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.reportService.Preview(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, summary)
}

// Send godoc
// @Summary Render the report PDF and email it to the user and their manager
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendReportRequest true "Report sections"
// @Success 200 {object} SendReportResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /reports/send [post]
func (h *ReportHandler) Send(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SendReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary := model.Summary{
		LastWeek:      req.LastWeek,
		Issues:        req.Issues,
		Opportunities: req.Opportunities,
		NextWeek:      req.NextWeek,
	}

	report, err := h.reportService.Send(c.Request().Context(), userID, summary)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, SendReportResponse{
		ReportID:   report.ID.String(),
		Recipients: report.Recipients,
		Message:    "report sent successfully",
	})
}

// History godoc
// @Summary List the caller's sent reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Report
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports [get]
func (h *ReportHandler) History(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	reports, err := h.reportService.History(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, reports)
}

// SendAll godoc
// @Summary Run the weekly compose/render/dispatch pipeline for every user
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports/send-all [post]
func (h *ReportHandler) SendAll(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	if err := h.dispatcher.SendAll(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "weekly run completed with failures",
			Code:  "SEND_ALL_PARTIAL",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "weekly reports sent",
	})
}
