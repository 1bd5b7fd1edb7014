package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/middleware"
)

// ResponseBuilder writes the JSON envelopes for a single request. Every
// envelope carries the request id and a timestamp.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a dto.SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with the message for messageKey in the caller's
// Accept-Language locale. A non-nil err is attached to the context for the
// error handler middleware to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.abort(statusCode, message, nil, err)
}

// Invalid aborts with 400 for a request that decoded but failed its field
// checks. The offending field is reported in Details.
func (b *ResponseBuilder) Invalid(verr *dto.ValidationError) {
	b.abort(http.StatusBadRequest, verr.Error(), map[string]string{verr.Field: verr.Message}, verr)
}

func (b *ResponseBuilder) abort(statusCode int, message string, details map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{
		Error:     dto.ErrCodeFromStatus(statusCode),
		Message:   message,
		Details:   details,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}
