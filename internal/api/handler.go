package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fipepulse/internal/domain/dto"
	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/fipe"
	"github.com/guttosm/fipepulse/internal/middleware"
	"github.com/guttosm/fipepulse/internal/service"
)

// Handler serves the catalog, reference period, history and session endpoints.
//
// Responsibilities:
//   - Validate path, query and body parameters
//   - Delegate to the comparison service with the request context
//   - Translate results into response DTOs and failures into status codes
type Handler struct {
	svc service.ComparisonService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.ComparisonService): Service used for catalog lookups, history runs and sessions.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.ComparisonService) *Handler {
	return &Handler{svc: svc}
}

// ListBrands godoc
// @Summary      List brands
// @Description  Returns the brands of a vehicle type
// @Tags         catalog
// @Produce      json
// @Param        type  path      string  true  "Vehicle type"  Enums(cars, motorcycles, trucks)
// @Success      200   {object}  dto.OptionsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/v1/catalog/{type}/brands [get]
func (h *Handler) ListBrands(c *gin.Context) {
	vt, ok := vehicleType(c)
	if !ok {
		return
	}
	opts, err := h.svc.Brands(c.Request.Context(), vt)
	if err != nil {
		fail(c, "failed to list brands", err)
		return
	}
	c.JSON(http.StatusOK, dto.OptionsResponse{Level: "brands", Options: opts})
}

// ListModels godoc
// @Summary      List models
// @Description  Returns the models of a brand
// @Tags         catalog
// @Produce      json
// @Param        type   path      string  true  "Vehicle type"  Enums(cars, motorcycles, trucks)
// @Param        brand  path      string  true  "Brand code"    example(59)
// @Success      200    {object}  dto.OptionsResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/v1/catalog/{type}/brands/{brand}/models [get]
func (h *Handler) ListModels(c *gin.Context) {
	vt, ok := vehicleType(c)
	if !ok {
		return
	}
	opts, err := h.svc.Models(c.Request.Context(), vt, c.Param("brand"))
	if err != nil {
		fail(c, "failed to list models", err)
		return
	}
	c.JSON(http.StatusOK, dto.OptionsResponse{Level: "models", Options: opts})
}

// ListYears godoc
// @Summary      List model years
// @Description  Returns the year/fuel variants of a model
// @Tags         catalog
// @Produce      json
// @Param        type   path      string  true  "Vehicle type"  Enums(cars, motorcycles, trucks)
// @Param        brand  path      string  true  "Brand code"    example(59)
// @Param        model  path      string  true  "Model code"    example(5940)
// @Success      200    {object}  dto.OptionsResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/v1/catalog/{type}/brands/{brand}/models/{model}/years [get]
func (h *Handler) ListYears(c *gin.Context) {
	vt, ok := vehicleType(c)
	if !ok {
		return
	}
	opts, err := h.svc.Years(c.Request.Context(), vt, c.Param("brand"), c.Param("model"))
	if err != nil {
		fail(c, "failed to list years", err)
		return
	}
	c.JSON(http.StatusOK, dto.OptionsResponse{Level: "years", Options: opts})
}

// GetAttributes godoc
// @Summary      Vehicle attributes
// @Description  Returns the current catalog attributes of a fully resolved vehicle
// @Tags         catalog
// @Produce      json
// @Param        type   path      string  true  "Vehicle type"  Enums(cars, motorcycles, trucks)
// @Param        brand  path      string  true  "Brand code"    example(59)
// @Param        model  path      string  true  "Model code"    example(5940)
// @Param        year   path      string  true  "Year code"     example(2014-1)
// @Success      200    {object}  models.VehicleAttributes
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/v1/catalog/{type}/brands/{brand}/models/{model}/years/{year} [get]
func (h *Handler) GetAttributes(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	attrs, err := h.svc.Attributes(c.Request.Context(), id)
	if err != nil {
		fail(c, "failed to resolve vehicle", err)
		return
	}
	c.JSON(http.StatusOK, attrs)
}

// ListPeriods godoc
// @Summary      Reference periods
// @Description  Returns the pricing reference periods, most recent first
// @Tags         history
// @Produce      json
// @Success      200  {object}  dto.PeriodsResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/v1/periods [get]
func (h *Handler) ListPeriods(c *gin.Context) {
	periods, err := h.svc.Periods(c.Request.Context())
	if err != nil {
		fail(c, "failed to load reference periods", err)
		return
	}
	c.JSON(http.StatusOK, dto.PeriodsResponse{Periods: periods})
}

// GetHistory godoc
// @Summary      Price history
// @Description  Fetches up to `months` monthly prices of one vehicle, most recent first.
// @Description  If a period lookup fails the points fetched so far are returned with the error.
// @Tags         history
// @Produce      json
// @Param        type    path      string  true   "Vehicle type"  Enums(cars, motorcycles, trucks)
// @Param        brand   path      string  true   "Brand code"    example(59)
// @Param        model   path      string  true   "Model code"    example(5940)
// @Param        year    path      string  true   "Year code"     example(2014-1)
// @Param        months  query     int     false  "Month count"   minimum(1) example(12)
// @Success      200     {object}  dto.HistoryResponse
// @Success      206     {object}  dto.HistoryResponse  "Partial history"
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/v1/history/{type}/{brand}/{model}/{year} [get]
func (h *Handler) GetHistory(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	months, ok := monthsQuery(c)
	if !ok {
		return
	}

	points, err := h.svc.History(c.Request.Context(), id, months)
	resp := dto.HistoryResponse{Vehicle: id, Points: points}
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, fipe.ErrPeriodLookupFailed) && len(points) > 0:
		resp.Error = err.Error()
		c.JSON(http.StatusPartialContent, resp)
	default:
		fail(c, "failed to fetch price history", err)
	}
}

func vehicleType(c *gin.Context) (models.VehicleType, bool) {
	vt, err := models.ParseVehicleType(c.Param("type"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid vehicle type", err)
		return "", false
	}
	return vt, true
}

func identity(c *gin.Context) (models.VehicleIdentity, bool) {
	vt, ok := vehicleType(c)
	if !ok {
		return models.VehicleIdentity{}, false
	}
	id := models.VehicleIdentity{
		VehicleType: vt,
		BrandCode:   c.Param("brand"),
		ModelCode:   c.Param("model"),
		YearCode:    c.Param("year"),
	}
	if err := id.Validate(); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid vehicle", err)
		return models.VehicleIdentity{}, false
	}
	return id, true
}

// monthsQuery parses ?months=N. An absent value yields 0, meaning the default.
func monthsQuery(c *gin.Context) (int, bool) {
	raw := c.Query("months")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		middleware.AbortWithError(c, http.StatusBadRequest, "months must be a positive integer", err)
		return 0, false
	}
	return n, true
}
