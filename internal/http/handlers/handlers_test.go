package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/benkhawiya/internal/cache"
	"github.com/ppiankov/benkhawiya/internal/council"
	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/model"
	"github.com/ppiankov/benkhawiya/internal/platform/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newResponder(t *testing.T) *council.Responder {
	t.Helper()
	opts, err := council.OptionsFromConfig(model.DefaultConfig())
	require.NoError(t, err)
	r, err := council.NewResponder(opts)
	require.NoError(t, err)
	return r
}

func newEngine(t *testing.T, c cache.Cache) *gin.Engine {
	t.Helper()
	responder := newResponder(t)
	ch := NewCouncilHandler(logger.NewNop(), responder, c, time.Minute)
	mh := NewMathematicsHandler(responder, c, time.Minute)

	r := gin.New()
	r.GET("/api", NewAPIHandler().Info)
	r.GET("/health", NewHealthHandler().HealthCheck)
	r.GET("/principles", NewPrinciplesHandler().List)
	r.POST("/council/consult", ch.Consult)
	r.GET("/mathematics/golden-ratio/:n", mh.GoldenRatio)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.APIError {
	t.Helper()
	var env response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Error
}

func TestConsult_Query(t *testing.T) {
	r := newEngine(t, nil)
	w := do(r, http.MethodPost, "/council/consult?question=How+should+we+build+trust+and+integrity%3F", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res model.ConsultationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, model.AspectPelu, res.PrimaryAspect)
	assert.Equal(t, "How should we build trust and integrity?", res.Question)
	assert.Len(t, res.MatchedPrinciples, 11)
	assert.NotEmpty(t, res.ResponseText)
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestConsult_JSONBody(t *testing.T) {
	r := newEngine(t, nil)
	w := do(r, http.MethodPost, "/council/consult", `{"question":"What vision of the future should we imagine?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.ConsultationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, model.AspectRuwa, res.PrimaryAspect)
}

func TestConsult_InvalidInput(t *testing.T) {
	r := newEngine(t, nil)
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"missing question", "/council/consult", ""},
		{"blank question", "/council/consult?question=+++", ""},
		{"too long", "/council/consult?question=" + strings.Repeat("a", 1001), ""},
		{"malformed body", "/council/consult", `{"question":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid_input", decodeError(t, w).Code)
		})
	}
}

func TestConsult_CacheHitReturnsSameBytes(t *testing.T) {
	r := newEngine(t, cache.NewMemoryCache(time.Minute, time.Minute))
	target := "/council/consult?question=How+do+we+heal+our+community%3F"

	first := do(r, http.MethodPost, target, "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := do(r, http.MethodPost, target, "")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestConsult_ErrorsAreNotCached(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	r := newEngine(t, c)

	w := do(r, http.MethodPost, "/council/consult?question=", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, c.Len())
}

func TestGoldenRatio(t *testing.T) {
	r := newEngine(t, nil)
	w := do(r, http.MethodGet, "/mathematics/golden-ratio/5", "")
	require.Equal(t, http.StatusOK, w.Code)

	var terms []float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &terms))
	require.Len(t, terms, 5)
	assert.Equal(t, 1.0, terms[0])
	assert.InDelta(t, council.Phi, terms[1], 1e-12)
}

func TestGoldenRatio_BadRequests(t *testing.T) {
	r := newEngine(t, nil)
	for _, n := range []string{"0", "-3", "101", "abc", "1.5"} {
		t.Run(n, func(t *testing.T) {
			w := do(r, http.MethodGet, "/mathematics/golden-ratio/"+n, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid_input", decodeError(t, w).Code)
		})
	}
}

func TestPrinciples(t *testing.T) {
	r := newEngine(t, nil)

	w := do(r, http.MethodGet, "/principles", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []model.Principle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 42)
	assert.Equal(t, 1, all[0].ID)

	w = do(r, http.MethodGet, "/principles?aspect=RUWA", "")
	require.Equal(t, http.StatusOK, w.Code)
	var ruwa []model.Principle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ruwa))
	assert.Len(t, ruwa, 10)
	for _, p := range ruwa {
		assert.Equal(t, model.AspectRuwa, p.Aspect)
	}

	w = do(r, http.MethodGet, "/principles?aspect=fire", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	r := newEngine(t, nil)
	w := do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status     string `json:"status"`
		Components struct {
			Catalog          bool           `json:"catalog"`
			PrinciplesLoaded int            `json:"principles_loaded"`
			Aspects          map[string]int `json:"aspects"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Components.Catalog)
	assert.Equal(t, 42, body.Components.PrinciplesLoaded)
	assert.Equal(t, map[string]int{"sewu": 10, "pelu": 11, "ruwa": 10, "temu": 11}, body.Components.Aspects)
}

func TestAPIInfo(t *testing.T) {
	r := newEngine(t, nil)
	w := do(r, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, model.Version, body["version"])
	assert.Equal(t, "operational", body["status"])
	assert.Equal(t, "sacredtreeofthephoenix.org", body["domain"])
	assert.Len(t, body["endpoints"], len(Endpoints))
}
