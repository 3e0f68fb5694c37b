package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ppiankov/benkhawiya/internal/catalog"
	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/model"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

type healthResponse struct {
	Status     string           `json:"status"`
	Components healthComponents `json:"components"`
}

type healthComponents struct {
	Catalog          bool                 `json:"catalog"`
	PrinciplesLoaded int                  `json:"principles_loaded"`
	Aspects          map[model.Aspect]int `json:"aspects"`
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	loaded := catalog.Count()
	status := "ok"
	if loaded != catalog.Size {
		status = "degraded"
	}
	response.RespondOK(c, healthResponse{
		Status: status,
		Components: healthComponents{
			Catalog:          loaded == catalog.Size,
			PrinciplesLoaded: loaded,
			Aspects:          catalog.CountByAspect(),
		},
	})
}
