// Package response defines the uniform JSON envelope used by every handler.
package response

import "github.com/gin-gonic/gin"

// Body is the envelope returned on every success response.
type Body struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorBody is the envelope returned on every error response.
// Errors carries field-level detail when available.
type ErrorBody struct {
	StatusCode int      `json:"statusCode"`
	Data       any      `json:"data"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// OK writes a success envelope with the given HTTP status.
func OK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Body{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// Error writes an error envelope with the given HTTP status.
func Error(c *gin.Context, status int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	c.JSON(status, ErrorBody{
		StatusCode: status,
		Message:    message,
		Success:    false,
		Errors:     errs,
	})
}

// AbortError writes an error envelope and aborts the middleware chain.
// Used by middlewares; handlers use Error and return.
func AbortError(c *gin.Context, status int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	c.AbortWithStatusJSON(status, ErrorBody{
		StatusCode: status,
		Message:    message,
		Success:    false,
		Errors:     errs,
	})
}
