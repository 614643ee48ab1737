package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	statusHandler *api.StatusHandler,
	paymentHandler *api.PaymentHandler,
	shopAdminHandler *api.ShopAdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, statusHandler, paymentHandler, shopAdminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	statusHandler *api.StatusHandler,
	paymentHandler *api.PaymentHandler,
	shopAdminHandler *api.ShopAdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		shop := apiGroup.Group("/shop")
		{
			shop.GET("/status", statusHandler.GetStatus)
			// Writes against the status endpoint get a closed verdict,
			// never a mutation.
			for _, method := range []string{
				http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
			} {
				shop.Handle(method, "/status", statusHandler.MethodNotAllowed)
			}
		}

		payment := apiGroup.Group("/payment")
		payment.Use(middleware.RateLimitMiddleware(cfg.Payment))
		{
			addRoutes(payment, []route{
				{Method: http.MethodPost, Path: "/create", Handler: paymentHandler.CreatePayment},
				{Method: http.MethodGet, Path: "/ipn", Handler: paymentHandler.HandleIPN},
				{Method: http.MethodGet, Path: "/return", Handler: paymentHandler.HandleReturn},
			})
		}

		apiGroup.GET("/orders/:id", paymentHandler.GetOrder)

		admin := apiGroup.Group("/admin/shop")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPut, Path: "/force-status", Handler: shopAdminHandler.SetForceStatus},
				{Method: http.MethodGet, Path: "/force-status", Handler: shopAdminHandler.GetForceStatus},
				{Method: http.MethodPut, Path: "/operating-hours/:day", Handler: shopAdminHandler.UpsertOperatingHours},
				{Method: http.MethodGet, Path: "/operating-hours", Handler: shopAdminHandler.ListOperatingHours},
				{Method: http.MethodPost, Path: "/notifications", Handler: shopAdminHandler.CreateNotification},
				{Method: http.MethodGet, Path: "/notifications", Handler: shopAdminHandler.ListNotifications},
				{Method: http.MethodDelete, Path: "/notifications/:id", Handler: shopAdminHandler.DeactivateNotification},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
