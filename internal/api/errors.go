package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/fipe"
	"github.com/guttosm/fipepulse/internal/history"
	"github.com/guttosm/fipepulse/internal/middleware"
	"github.com/guttosm/fipepulse/internal/series"
	"github.com/guttosm/fipepulse/internal/service"
)

// statusFor maps domain failures onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidVehicleType),
		errors.Is(err, models.ErrIncompleteSelection),
		errors.Is(err, models.ErrSelectionOrder),
		errors.Is(err, models.ErrMalformedKey),
		errors.Is(err, history.ErrInvalidMonthCount),
		errors.Is(err, service.ErrInvalidLevel):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrVehicleNotInComparison),
		errors.Is(err, fipe.ErrVehicleNotFound):
		return http.StatusNotFound
	case errors.Is(err, series.ErrDuplicateVehicle):
		return http.StatusConflict
	case errors.Is(err, fipe.ErrCatalogUnavailable),
		errors.Is(err, fipe.ErrPeriodLookupFailed):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, message string, err error) {
	middleware.AbortWithError(c, statusFor(err), message, err)
}
