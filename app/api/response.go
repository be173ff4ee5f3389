package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response represents a standardized API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error information
type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ListFailure is the body returned when listing countries fails.
type ListFailure struct {
	Mensaje string `json:"mensaje"`
	Error   string `json:"error"`
}

// ListFailureMessage is the fixed mensaje of a failed listing.
const ListFailureMessage = "Error al listar los paises"

// ErrorResponse sends an error response
func ErrorResponse(c *gin.Context,
	statusCode int,
	code string,
	message string,
	details interface{}) {
	response := Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	c.JSON(statusCode, response)
}

// ValidationErrorResponse sends a validation error response
func ValidationErrorResponse(c *gin.Context, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", details)
}

// BadRequestResponse sends a bad request response for input that could not be read
func BadRequestResponse(c *gin.Context, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request data", details)
}

// NotFoundResponse sends a not found error response
func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", resource+" not found", nil)
}

// ListFailureResponse sends the 500 body of a failed listing. err and properties are
// left on the context for RequestLogger.
func ListFailureResponse(c *gin.Context, err error, properties map[string]interface{}) {
	_ = c.Error(err).SetMeta(properties)
	c.JSON(http.StatusInternalServerError, ListFailure{
		Mensaje: ListFailureMessage,
		Error:   err.Error(),
	})
}

// AbortInternal aborts the request with a bodiless 500. err and properties are left on
// the context for RequestLogger.
func AbortInternal(c *gin.Context, err error, properties map[string]interface{}) {
	_ = c.Error(err).SetMeta(properties)
	c.AbortWithStatus(http.StatusInternalServerError)
}
