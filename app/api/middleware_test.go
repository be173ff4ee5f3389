package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uceva/country-service/internal/logger"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := logger.NewZeroLogger(&buf, logger.LevelInfo, nil)

	r := gin.New()
	r.Use(RequestID(), RequestLogger(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("datastore down"))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
	r.GET("/paises/:id", func(c *gin.Context) {
		AbortInternal(c, errors.New("connection reset"), map[string]interface{}{"operation": "get", "id": 7})
	})

	t.Run("Info", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, "req-ok")
		r.ServeHTTP(httptest.NewRecorder(), req)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "request served", entry["message"])
		assert.Equal(t, "GET", entry["method"])
		assert.Equal(t, "/ok", entry["path"])
		assert.Equal(t, float64(http.StatusOK), entry["status"])
		assert.Equal(t, "req-ok", entry["request_id"])
	})

	t.Run("Error", func(t *testing.T) {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "error", entry["level"])
		assert.Equal(t, "datastore down", entry["error"])
		assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	})

	t.Run("Fault logged once with its properties", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/paises/7", nil)
		req.Header.Set(RequestIDHeader, "req-7")
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "error", entry["level"])
		assert.Equal(t, "connection reset", entry["error"])
		assert.Equal(t, "get", entry["operation"])
		assert.Equal(t, float64(7), entry["id"])
		assert.Equal(t, "/paises/7", entry["path"])
		assert.Equal(t, "req-7", entry["request_id"])
	})
}

func TestCorsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CorsMiddleware())
	r.GET("/paises", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/paises", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/paises", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
