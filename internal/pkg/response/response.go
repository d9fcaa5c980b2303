package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbook/room-booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse defines the JSON structure for simple confirmation responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// Anything else is reported as an opaque 500 so storage details never leak.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// Message sends a JSON confirmation message with the given status code.
func Message(c *gin.Context, code int, msg string) {
	c.JSON(code, MessageResponse{Message: msg})
}
