package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ppiankov/benkhawiya/internal/cache"
	"github.com/ppiankov/benkhawiya/internal/council"
	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/platform/apierr"
)

type MathematicsHandler struct {
	responder *council.Responder
	cache     cache.Cache
	ttl       time.Duration
}

func NewMathematicsHandler(responder *council.Responder, c cache.Cache, ttl time.Duration) *MathematicsHandler {
	return &MathematicsHandler{responder: responder, cache: c, ttl: ttl}
}

// GoldenRatio handles GET /mathematics/golden-ratio/:n
func (h *MathematicsHandler) GoldenRatio(c *gin.Context) {
	raw := c.Param("n")
	n, err := strconv.Atoi(raw)
	if err != nil {
		response.RespondAPIError(c, apierr.InvalidInput(fmt.Errorf("n must be an integer, got %q", raw)))
		return
	}

	body, hit, err := cache.Remember(h.cache, cache.Key("golden", strconv.Itoa(n)), h.ttl, func() ([]byte, error) {
		terms, err := h.responder.GoldenProgression(n)
		if err != nil {
			return nil, err
		}
		return json.Marshal(terms)
	})
	if err != nil {
		if errors.Is(err, council.ErrInvalidInput) {
			response.RespondAPIError(c, apierr.InvalidInput(err))
			return
		}
		response.RespondAPIError(c, err)
		return
	}

	setCacheHeader(c, h.cache, hit)
	response.RespondJSONBytes(c, body)
}
