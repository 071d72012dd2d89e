package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"userapi/internal/config"
	"userapi/internal/http/controller"
	"userapi/internal/http/middleware"
	"userapi/internal/metrics"
)

func NewRouter(cfg *config.Config, handler *controller.Handler, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		otelgin.Middleware(cfg.OTELServiceName),
		middleware.ZapLogger(logger, "/health", "/metrics"),
		middleware.ZapRecovery(logger),
		middleware.Metrics(m),
	)

	router.GET("/", handler.Welcome)
	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	api := router.Group("/api")
	api.GET("/info", handler.Info)

	users := api.Group("/users")
	users.GET("", handler.ListUsers)
	users.POST("", handler.CreateUser)
	users.GET("/events", handler.Events)
	users.GET("/:id", handler.GetUser)
	users.PUT("/:id", handler.UpdateUser)
	users.DELETE("/:id", handler.DeleteUser)

	return router
}

// NewHandler wraps the router with a permissive CORS policy so preflight
// requests are answered for every route, matched or not.
func NewHandler(router *gin.Engine) nethttp.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			nethttp.MethodGet,
			nethttp.MethodPost,
			nethttp.MethodPut,
			nethttp.MethodDelete,
			nethttp.MethodPatch,
			nethttp.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})(router)
}
