package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school-backend/internal/shared/telemetry"
)

// FailureResponse is the body for server-side failures.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ClientErrorResponse is the body for client-caused request problems.
type ClientErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a failure response with a safe message. Internal detail is
// logged, never echoed to the caller.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, FailureResponse{Success: false, Message: message})
}

// BadRequest rejects a request caused by invalid client input.
func BadRequest(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ClientErrorResponse{Error: reason})
}
