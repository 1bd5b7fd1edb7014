package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/logger"
)

// ErrorHandler logs the last error a handler attached to the context. Errors
// behind a 4xx response are logged at warn, the rest at error. A handler that
// attached an error without writing a response gets a localized 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		status := c.Writer.Status()
		if !c.Writer.Written() {
			status = http.StatusInternalServerError
		}

		log := logger.Logger()
		event := log.Error()
		if getLogLevel(status) == "warn" {
			event = log.Warn()
		}
		event = event.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", status).
			Err(c.Errors.Last().Err)
		if clientID := GetClientID(c); clientID != "" {
			event = event.Str("client_id", clientID)
		}
		event.Msg("request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, message).WithRequestID(GetRequestID(c)))
		}
	}
}
