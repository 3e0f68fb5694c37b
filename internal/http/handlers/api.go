package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/model"
)

// Endpoint describes one public route
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Endpoints lists the public API in the order the router registers it
var Endpoints = []Endpoint{
	{"GET", "/", "Web interface"},
	{"GET", "/api", "API information"},
	{"GET", "/health", "Liveness and catalog status"},
	{"GET", "/principles", "All 42 principles; filter with ?aspect=sewu|pelu|ruwa|temu"},
	{"POST", "/council/consult", "Consult the council with ?question="},
	{"GET", "/mathematics/golden-ratio/{n}", "First n terms of the golden-ratio progression"},
}

type APIHandler struct{}

func NewAPIHandler() *APIHandler { return &APIHandler{} }

type apiInfo struct {
	System    string          `json:"system"`
	Version   string          `json:"version"`
	Status    string          `json:"status"`
	Domain    string          `json:"domain"`
	Features  map[string]bool `json:"features"`
	Endpoints []Endpoint      `json:"endpoints"`
}

// Info handles GET /api
func (h *APIHandler) Info(c *gin.Context) {
	response.RespondOK(c, apiInfo{
		System:  "Benkhawiya AI - Cosmic Reasoning System",
		Version: model.Version,
		Status:  "operational",
		Domain:  "sacredtreeofthephoenix.org",
		Features: map[string]bool{
			"council_reasoning":        true,
			"cosmic_principles":        true,
			"golden_ratio_mathematics": true,
		},
		Endpoints: Endpoints,
	})
}
