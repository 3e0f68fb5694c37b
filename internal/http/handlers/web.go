package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppiankov/benkhawiya/internal/catalog"
	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/http/web"
	"github.com/ppiankov/benkhawiya/internal/model"
	"github.com/ppiankov/benkhawiya/internal/platform/apierr"
)

type WebHandler struct {
	maxQuestionLength int
}

func NewWebHandler(maxQuestionLength int) *WebHandler {
	return &WebHandler{maxQuestionLength: maxQuestionLength}
}

type aspectGroup struct {
	Name       string
	Theme      string
	Principles []model.Principle
}

// Index handles GET / by rendering the embedded index.html
func (h *WebHandler) Index(c *gin.Context) {
	groups := make([]aspectGroup, 0, len(model.Aspects))
	for _, a := range model.Aspects {
		groups = append(groups, aspectGroup{
			Name:       a.String(),
			Theme:      a.Theme(),
			Principles: catalog.ByAspect(a),
		})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":             "Benkhawiya AI - Cosmic Reasoning System",
		"Version":           model.Version,
		"MaxQuestionLength": h.maxQuestionLength,
		"PrincipleCount":    catalog.Count(),
		"Aspects":           groups,
	})
}

// Favicon handles GET /favicon.ico
func (h *WebHandler) Favicon(c *gin.Context) {
	icon, err := web.Favicon()
	if err != nil {
		response.RespondError(c, http.StatusNotFound, apierr.CodeNotFound, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", icon)
}
