// Package responses renders the standard API envelope:
// {success, message, data?, errors?}.
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the caller-visible response shape on every API route.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Success writes a 200 response with data.
func Success(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 response with data.
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// BadRequest writes a 400 response with the validation error list.
func BadRequest(c *gin.Context, message string, errors []string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message, Errors: errors})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: message})
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Envelope{Success: false, Message: message})
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{Success: false, Message: message})
}

// Conflict writes a 409 response.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Envelope{Success: false, Message: message})
}

// InternalServerError writes a 500 response. Internal detail is never
// included in the body; it belongs in the log.
func InternalServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: message})
}
