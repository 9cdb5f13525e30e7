package http_common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

const UserTokenHeader = "X-user-token"

type ErrorResponse struct {
	Message string `json:"error"`
}

// StatusFor maps an error kind to the status code the client sees.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrExternalDependency):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Fail writes the error response for err. Client-caused failures carry their
// message, everything else is reported as a generic internal error.
func Fail(ctx *gin.Context, logger *slog.Logger, msg string, err error, attrs ...slog.Attr) {
	status := StatusFor(err)

	args := make([]any, 0, len(attrs)+2)
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.String("error", err.Error()), slog.Int("status", status))

	var body string
	switch status {
	case http.StatusNotFound:
		logger.Warn(msg, args...)
		body = "not found"
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		logger.Warn(msg, args...)
		body = err.Error()
	case http.StatusBadGateway:
		logger.Error(msg, args...)
		body = "upstream unavailable"
	default:
		logger.Error(msg, args...)
		body = "internal error"
	}

	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: body})
}

func BadRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
