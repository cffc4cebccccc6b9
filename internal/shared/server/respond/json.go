package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse acknowledges a successful write operation.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Created writes a 201 acknowledgement with the given message.
func Created(c *gin.Context, message string) {
	JSON(c, http.StatusCreated, MessageResponse{Success: true, Message: message})
}
