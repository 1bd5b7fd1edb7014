package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		handler        gin.HandlerFunc
		wantStatus     int
		wantLevel      string
		wantMessage    string
	}{
		{
			name: "unwritten error becomes localized 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("likes store closed"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantLevel:   "error",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:           "unwritten error in portuguese",
			acceptLanguage: "pt",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("likes store closed"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantLevel:   "error",
			wantMessage: "Ocorreu um erro inesperado",
		},
		{
			name: "written client error is logged at warn",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("likes store closed"))
				c.AbortWithStatusJSON(http.StatusNotFound, dto.NewError(dto.ErrCodeNotFound, "Recipe is not liked"))
			},
			wantStatus:  http.StatusNotFound,
			wantLevel:   "warn",
			wantMessage: "Recipe is not liked",
		},
		{
			name: "written upstream error is logged at error",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("likes store closed"))
				c.AbortWithStatusJSON(http.StatusBadGateway, dto.NewError(dto.ErrCodeUpstream, "upstream"))
			},
			wantStatus:  http.StatusBadGateway,
			wantLevel:   "error",
			wantMessage: "upstream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.GET("/api/likes/47746", func(c *gin.Context) {
				c.Set(string(ClientIDKey), "client-7")
				tt.handler(c)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/likes/47746", nil)
			req.Header.Set(RequestIDHeader, "req-err")
			if tt.acceptLanguage != "" {
				req.Header.Set(i18n.AcceptLanguageHeader, tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)

			entry := lastLogEntry(t, buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "likes store closed", entry["error"])
			assert.Equal(t, "req-err", entry["request_id"])
			assert.Equal(t, "client-7", entry["client_id"])
			assert.EqualValues(t, tt.wantStatus, entry["status_code"])
		})
	}
}

func TestErrorHandler_NoErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.GET("/api/list", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/list", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Empty(t, buf.String())
}
