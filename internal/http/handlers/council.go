package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ppiankov/benkhawiya/internal/cache"
	"github.com/ppiankov/benkhawiya/internal/council"
	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/observability"
	"github.com/ppiankov/benkhawiya/internal/platform/apierr"
	"github.com/ppiankov/benkhawiya/internal/platform/logger"
)

type CouncilHandler struct {
	log       *logger.Logger
	responder *council.Responder
	cache     cache.Cache
	ttl       time.Duration
}

// NewCouncilHandler creates the consult handler; a nil cache disables memoization
func NewCouncilHandler(log *logger.Logger, responder *council.Responder, c cache.Cache, ttl time.Duration) *CouncilHandler {
	return &CouncilHandler{log: log, responder: responder, cache: c, ttl: ttl}
}

type consultRequest struct {
	Question string `json:"question"`
}

// Consult handles POST /council/consult?question=...
// A JSON body {"question": ...} is read when the query parameter is absent.
func (h *CouncilHandler) Consult(c *gin.Context) {
	question, ok := c.GetQuery("question")
	if !ok && c.Request.ContentLength != 0 {
		var req consultRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondAPIError(c, apierr.InvalidInput(fmt.Errorf("invalid JSON body: %w", err)))
			return
		}
		question = req.Question
	}
	question = strings.TrimSpace(question)

	ctx, span := otel.Tracer(observability.TracerName).Start(c.Request.Context(), "council.consult")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	body, hit, err := cache.Remember(h.cache, cache.Key("consult", question), h.ttl, func() ([]byte, error) {
		result, err := h.responder.Consult(question)
		if err != nil {
			return nil, err
		}
		span.SetAttributes(
			attribute.String("council.primary_aspect", result.PrimaryAspect.String()),
			attribute.Bool("council.fallback", result.Fallback),
		)
		return json.Marshal(result)
	})
	if err != nil {
		if errors.Is(err, council.ErrInvalidInput) {
			response.RespondAPIError(c, apierr.InvalidInput(err))
			return
		}
		h.log.Error("council consultation failed", "question", question, "error", err)
		response.RespondAPIError(c, err)
		return
	}

	span.SetAttributes(attribute.Bool("cache.hit", hit))
	setCacheHeader(c, h.cache, hit)
	h.log.Debug("council consultation completed", "question", question, "cache_hit", hit)
	response.RespondJSONBytes(c, body)
}

func setCacheHeader(c *gin.Context, ch cache.Cache, hit bool) {
	if ch == nil {
		return
	}
	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
}
