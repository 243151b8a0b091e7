package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lionreport/internal/errors"
	"lionreport/internal/service"
)

// EntryHandler handles L.I.O.N. entry endpoints.
type EntryHandler struct {
	entryService service.EntryService
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(entryService service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// EntryRequest represents a L.I.O.N. entry create or edit.
type EntryRequest struct {
	LastWeek      string `json:"last_week" validate:"required"`
	Issues        string `json:"issues"`
	Opportunities string `json:"opportunities"`
	NextWeek      string `json:"next_week" validate:"required"`
}

func (r *EntryRequest) fields() service.EntryFields {
	return service.EntryFields{
		LastWeekAchievements: r.LastWeek,
		Issues:               r.Issues,
		Opportunities:        r.Opportunities,
		NextWeekCommitments:  r.NextWeek,
	}
}

func entryIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid entry id",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

// Create godoc
// @Summary Create a L.I.O.N. entry
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EntryRequest true "Entry fields"
// @Success 201 {object} model.LIONEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.entryService.Create(c.Request().Context(), userID, req.fields())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, entry)
}

// Get godoc
// @Summary View a single L.I.O.N. entry
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} model.LIONEntry
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /entries/{id} [get]
func (h *EntryHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	entryID, err := entryIDParam(c)
	if err != nil {
		return err
	}

	entry, err := h.entryService.Get(c.Request().Context(), userID, entryID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, entry)
}

// List godoc
// @Summary List the caller's L.I.O.N. entries
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.LIONEntry
// @Failure 401 {object} errors.ErrorResponse
// @Router /entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.entryService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, entries)
}

// Update godoc
// @Summary Edit a L.I.O.N. entry
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body EntryRequest true "Entry fields"
// @Success 200 {object} model.LIONEntry
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /entries/{id} [put]
func (h *EntryHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	entryID, err := entryIDParam(c)
	if err != nil {
		return err
	}

	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.entryService.Update(c.Request().Context(), userID, entryID, req.fields())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete a L.I.O.N. entry
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /entries/{id} [delete]
func (h *EntryHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	entryID, err := entryIDParam(c)
	if err != nil {
		return err
	}

	if err := h.entryService.Delete(c.Request().Context(), userID, entryID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "entry deleted successfully",
	})
}
