package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ppiankov/benkhawiya/internal/platform/logger"
	"github.com/ppiankov/benkhawiya/internal/worker"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func engine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/fail", func(c *gin.Context) { c.String(http.StatusInternalServerError, "no") })
	return r
}

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	r := engine(CORS([]string{"https://allowed.test"}))

	w := get(r, "/ping", map[string]string{"Origin": "https://allowed.test"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://allowed.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = get(r, "/ping", map[string]string{"Origin": "https://denied.test"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAttachTraceContext_KeepsIncomingIDs(t *testing.T) {
	r := engine(AttachTraceContext())

	w := get(r, "/ping", map[string]string{"X-Request-Id": "req-1", "X-Trace-Id": "trace-1"})
	assert.Equal(t, "req-1", w.Header().Get("X-Request-Id"))
	assert.Equal(t, "trace-1", w.Header().Get("X-Trace-Id"))

	w = get(r, "/ping", nil)
	assert.Len(t, w.Header().Get("X-Request-Id"), 36)
}

func TestRateLimit_NilLimiterPassesThrough(t *testing.T) {
	r := engine(RateLimit(nil))
	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	r := engine(RateLimit(worker.NewLimiter(0.001, 1, time.Minute)))
	assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)

	w := get(r, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":{"message":"too many requests, slow down","code":"rate_limited"}}`, w.Body.String())
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := engine(RequestLogger(&logger.Logger{SugaredLogger: zap.New(core).Sugar()}))

	get(r, "/ping", nil)
	get(r, "/fail", nil)

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zap.InfoLevel, entries[0].Level)
		assert.Equal(t, zap.ErrorLevel, entries[1].Level)
		assert.Equal(t, "/ping", entries[0].ContextMap()["path"])
	}
}
