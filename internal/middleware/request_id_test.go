package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "missing header gets a uuid"},
		{name: "caller id kept", header: "search-pizza-01", wantKept: true},
		{name: "longest accepted id", header: strings.Repeat("a", maxRequestIDLen), wantKept: true},
		{name: "overlong id replaced", header: strings.Repeat("a", maxRequestIDLen+1)},
		{name: "id with space replaced", header: "req 1"},
		{name: "id with control character replaced", header: "req\x01"},
		{name: "non ascii id replaced", header: "receita-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/api/search", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			id := w.Body.String()
			assert.Equal(t, id, w.Header().Get(RequestIDHeader))
			if tt.wantKept {
				assert.Equal(t, tt.header, id)
				return
			}
			_, err := uuid.Parse(id)
			assert.NoError(t, err, "expected a generated uuid, got %q", id)
		})
	}
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "unset"},
		{name: "set", value: "req-123", want: "req-123"},
		{name: "wrong type", value: 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			if tt.value != nil {
				c.Set(string(RequestIDKey), tt.value)
			}
			assert.Equal(t, tt.want, GetRequestID(c))
		})
	}
}
