package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/platform/apierr"
	"github.com/ppiankov/benkhawiya/internal/platform/logger"
)

// Recovery turns panics into a generic 500 envelope and logs the cause
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if log != nil {
			log.Error("panic recovered", "path", c.Request.URL.Path, "panic", fmt.Sprint(recovered))
		}
		response.RespondError(c, http.StatusInternalServerError, apierr.CodeInternal, errors.New("internal server error"))
	})
}
