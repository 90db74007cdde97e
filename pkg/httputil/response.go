package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medidesk/frontdesk-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithCreated sends a success response for a newly created resource
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err error) {
	switch e := err.(type) {
	case errors.ValidationErrors:
		c.JSON(http.StatusUnprocessableEntity, Response{
			Success: false,
			Error: &Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "validation failed",
				Fields:  e,
			},
		})
	case *errors.AppError:
		status := statusFor(e.Code)
		c.JSON(status, Response{
			Success: false,
			Error: &Error{
				Code:    status,
				Message: e.Message,
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error: &Error{
				Code:    http.StatusInternalServerError,
				Message: "internal server error",
			},
		})
	}
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrBadRequest:
		return http.StatusBadRequest
	case errors.ErrValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
