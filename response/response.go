package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a failure. Each kind maps to exactly one HTTP status;
// call sites pick a kind, never a raw status code.
type Kind int

const (
	Invalid Kind = iota
	Unauthorized
	NotFound
	Internal
)

func (k Kind) Status() int {
	switch k {
	case Invalid:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Envelope is the fixed-shape body of every successful reply.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorBody is the fixed-shape body of every failed reply.
type ErrorBody struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func OK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func Fail(c *gin.Context, kind Kind, message string, details ...string) {
	if details == nil {
		details = []string{}
	}
	c.AbortWithStatusJSON(kind.Status(), ErrorBody{
		StatusCode: kind.Status(),
		Message:    message,
		Success:    false,
		Errors:     details,
	})
}
