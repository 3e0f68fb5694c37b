package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ppiankov/benkhawiya/internal/catalog"
	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/model"
	"github.com/ppiankov/benkhawiya/internal/platform/apierr"
)

type PrinciplesHandler struct{}

func NewPrinciplesHandler() *PrinciplesHandler { return &PrinciplesHandler{} }

// List handles GET /principles, optionally filtered by ?aspect=
func (h *PrinciplesHandler) List(c *gin.Context) {
	raw, filtered := c.GetQuery("aspect")
	if !filtered {
		response.RespondOK(c, catalog.All())
		return
	}

	aspect, err := model.ParseAspect(raw)
	if err != nil {
		response.RespondAPIError(c, apierr.InvalidInput(err))
		return
	}
	response.RespondOK(c, catalog.ByAspect(aspect))
}
