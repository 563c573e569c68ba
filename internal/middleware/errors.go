package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fipepulse/internal/domain/dto"
)

// ErrorHandler writes the last error attached to the context when the handler
// did not write a response itself. dto.ErrorResponse errors keep their
// message; anything else becomes a generic 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	var resp dto.ErrorResponse
	if !errors.As(err, &resp) {
		resp = dto.NewErrorResponse("internal server error", err)
	}
	c.JSON(status, resp)
}

// AbortWithError stops the chain and writes a standard error body.
// err may be nil.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	resp := dto.NewErrorResponse(message, err)
	_ = c.Error(resp)
	c.AbortWithStatusJSON(status, resp)
}
