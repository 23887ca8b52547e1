package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/diegoportaz91-dot/saludvalleuco/pkg/apperror"
)

type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps an error onto the right status code. AppErrors keep
// their taxonomy (missing ids stay 404, validation stays 400 with field
// messages); anything else is wrapped as an internal error.
func RespondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	c.Error(err)
	c.JSON(appErr.StatusCode(), &Response{
		Status:  "error",
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}
