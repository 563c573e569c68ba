package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fipepulse/internal/domain/dto"
	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/middleware"
	"github.com/guttosm/fipepulse/internal/service"
)

// CreateSession godoc
// @Summary      Create a comparison session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSessionRequest  false  "Initial month count"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	view, err := h.svc.CreateSession(req.Months)
	if err != nil {
		fail(c, "failed to create session", err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(view))
}

// GetSession godoc
// @Summary      Get a session
// @Description  Returns the selection, month count and comparison table of a session
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.svc.GetSession(c.Param("id"))
	if err != nil {
		fail(c, "failed to load session", err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(view))
}

// DeleteSession godoc
// @Summary      Delete a session
// @Description  Cancels every running fetch of the session and discards it
// @Tags         sessions
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{id} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.svc.DeleteSession(c.Param("id")); err != nil {
		fail(c, "failed to delete session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetMonths godoc
// @Summary      Change the month count
// @Description  Applies to vehicles added afterwards
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Session ID"
// @Param        body  body      dto.MonthsRequest   true  "Month count"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{id}/months [put]
func (h *Handler) SetMonths(c *gin.Context) {
	var req dto.MonthsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	view, err := h.svc.SetMonths(c.Param("id"), req.Months)
	if err != nil {
		fail(c, "failed to set months", err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(view))
}

// Select godoc
// @Summary      Set a selection level
// @Description  Sets type, brand, model or year, clears the levels after it and returns the options of the next level
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id     path      string             true  "Session ID"
// @Param        level  path      string             true  "Level"  Enums(type, brand, model, year)
// @Param        body   body      dto.SelectRequest  true  "Option code"
// @Success      200    {object}  dto.SelectionResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{id}/selection/{level} [put]
func (h *Handler) Select(c *gin.Context) {
	var req dto.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	res, err := h.svc.Select(c.Request.Context(), c.Param("id"), c.Param("level"), req.Code)
	if err != nil {
		fail(c, "failed to update selection", err)
		return
	}
	c.JSON(http.StatusOK, dto.SelectionResponse{
		Selection: res.Selection,
		NextLevel: res.NextLevel,
		Options:   res.Options,
	})
}

// AddVehicle godoc
// @Summary      Add a vehicle to the comparison
// @Description  Starts fetching the vehicle's price history in the background. Without identity fields the session's selection is used.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true   "Session ID"
// @Param        body  body      dto.AddVehicleRequest  false  "Vehicle"
// @Success      202   {object}  dto.TableRow
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{id}/vehicles [post]
func (h *Handler) AddVehicle(c *gin.Context) {
	var req dto.AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	var vehicle *models.VehicleIdentity
	if !req.Empty() {
		vt, err := models.ParseVehicleType(req.VehicleType)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid vehicle type", err)
			return
		}
		vehicle = &models.VehicleIdentity{
			VehicleType: vt,
			BrandCode:   req.BrandCode,
			ModelCode:   req.ModelCode,
			YearCode:    req.YearCode,
		}
	}

	entry, err := h.svc.AddVehicle(c.Param("id"), vehicle, req.Months)
	if err != nil {
		fail(c, "failed to add vehicle", err)
		return
	}
	c.JSON(http.StatusAccepted, dto.NewTableRow(entry))
}

// RemoveVehicle godoc
// @Summary      Remove a vehicle from the comparison
// @Description  Cancels the vehicle's fetch and discards its series
// @Tags         sessions
// @Param        id   path  string  true  "Session ID"
// @Param        key  path  string  true  "Vehicle key"  example(cars_59_5940_2014-1)
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{id}/vehicles/{key} [delete]
func (h *Handler) RemoveVehicle(c *gin.Context) {
	id, err := models.ParseIdentityKey(c.Param("key"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid vehicle key", err)
		return
	}
	if err := h.svc.RemoveVehicle(c.Param("id"), id); err != nil {
		fail(c, "failed to remove vehicle", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetChart godoc
// @Summary      Comparison chart
// @Description  Datasets of every vehicle on a shared label axis, oldest period first
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  models.Chart
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/sessions/{id}/chart [get]
func (h *Handler) GetChart(c *gin.Context) {
	chart, err := h.svc.Chart(c.Param("id"))
	if err != nil {
		fail(c, "failed to build chart", err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func sessionResponse(v service.SessionView) dto.SessionResponse {
	return dto.SessionResponse{
		ID:        v.ID,
		Selection: v.Selection,
		Months:    v.Months,
		Vehicles:  dto.NewTableRows(v.Vehicles),
	}
}
