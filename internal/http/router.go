package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/ppiankov/benkhawiya/internal/http/handlers"
	httpMW "github.com/ppiankov/benkhawiya/internal/http/middleware"
	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/http/web"
	"github.com/ppiankov/benkhawiya/internal/platform/apierr"
	"github.com/ppiankov/benkhawiya/internal/platform/logger"
	"github.com/ppiankov/benkhawiya/internal/worker"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string
	Limiter     *worker.Limiter // nil disables rate limiting
	Tracing     bool
	ServiceName string

	WebHandler         *httpH.WebHandler
	APIHandler         *httpH.APIHandler
	HealthHandler      *httpH.HealthHandler
	PrinciplesHandler  *httpH.PrinciplesHandler
	CouncilHandler     *httpH.CouncilHandler
	MathematicsHandler *httpH.MathematicsHandler
}

var errNotFound = errors.New("route not found")

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(httpMW.Recovery(cfg.Log))
	if cfg.Tracing {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health stays outside the limiter
	if cfg.HealthHandler != nil {
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	// Web
	if cfg.WebHandler != nil {
		r.SetHTMLTemplate(web.Templates())
		r.StaticFS("/static", web.Static())
		r.GET("/favicon.ico", cfg.WebHandler.Favicon)
		r.GET("/", cfg.WebHandler.Index)
	}

	api := r.Group("/")
	api.Use(httpMW.RateLimit(cfg.Limiter))
	{
		if cfg.APIHandler != nil {
			api.GET("/api", cfg.APIHandler.Info)
		}
		if cfg.PrinciplesHandler != nil {
			api.GET("/principles", cfg.PrinciplesHandler.List)
		}
		if cfg.CouncilHandler != nil {
			api.POST("/council/consult", cfg.CouncilHandler.Consult)
		}
		if cfg.MathematicsHandler != nil {
			api.GET("/mathematics/golden-ratio/:n", cfg.MathematicsHandler.GoldenRatio)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, http.StatusNotFound, apierr.CodeNotFound, errNotFound)
	})

	return r
}
