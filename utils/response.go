package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes carried in the error envelope.
const (
	CodeAuthenticationError = "AUTHENTICATION_ERROR"
	CodeBadRequestError     = "BAD_REQUEST_ERROR"
	CodeNotFoundError       = "NOT_FOUND_ERROR"
	CodeInvalidVPA          = "INVALID_VPA"
	CodeInvalidCard         = "INVALID_CARD"
	CodeExpiredCard         = "EXPIRED_CARD"
	CodeServerError         = "SERVER_ERROR"
)

// ErrorBody is the gateway's error envelope: { "error": { code, description } }.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and a human description.
type ErrorDetail struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Error sends the standard error envelope with the given HTTP status.
func Error(c *gin.Context, status int, code, description string) {
	c.JSON(status, ErrorBody{Error: ErrorDetail{Code: code, Description: description}})
}

// AuthenticationError sends a 401 with AUTHENTICATION_ERROR.
func AuthenticationError(c *gin.Context, description string) {
	Error(c, http.StatusUnauthorized, CodeAuthenticationError, description)
}

// BadRequest sends a 400 with BAD_REQUEST_ERROR.
func BadRequest(c *gin.Context, description string) {
	Error(c, http.StatusBadRequest, CodeBadRequestError, description)
}

// NotFound sends a 404 with NOT_FOUND_ERROR.
func NotFound(c *gin.Context, description string) {
	Error(c, http.StatusNotFound, CodeNotFoundError, description)
}

// InvalidVPA sends a 400 with INVALID_VPA.
func InvalidVPA(c *gin.Context, description string) {
	Error(c, http.StatusBadRequest, CodeInvalidVPA, description)
}

// InvalidCard sends a 400 with INVALID_CARD.
func InvalidCard(c *gin.Context, description string) {
	Error(c, http.StatusBadRequest, CodeInvalidCard, description)
}

// ExpiredCard sends a 400 with EXPIRED_CARD.
func ExpiredCard(c *gin.Context, description string) {
	Error(c, http.StatusBadRequest, CodeExpiredCard, description)
}

// ServerError sends a 500 with SERVER_ERROR.
func ServerError(c *gin.Context, description string) {
	Error(c, http.StatusInternalServerError, CodeServerError, description)
}
