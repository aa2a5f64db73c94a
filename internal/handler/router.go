package handler

import (
	"net/http"

	"clubhouse/internal/domain/user"
	"clubhouse/internal/handler/api"
	"clubhouse/internal/handler/middleware"
	"clubhouse/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Members  *api.MemberHandler
	Freezes  *api.FreezeHandler
	Credits  *api.CreditHandler
	Waitlist *api.WaitlistHandler
	Stripe   *api.StripeWebhookHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.POST("/webhooks/stripe", h.Stripe.Handle)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireRole(user.RoleMember))
		addRoutes(me, []route{
			{Method: http.MethodGet, Path: "/payment-status", Handler: h.Members.PaymentStatus},
			{Method: http.MethodGet, Path: "/freeze-eligibility", Handler: h.Members.FreezeEligibility},
			{Method: http.MethodPost, Path: "/freeze-requests", Handler: h.Freezes.Request},
			{Method: http.MethodPost, Path: "/freeze-requests/:id/cancel", Handler: h.Freezes.Cancel},
		})

		admin := apiGroup.Group("/admin")
		adminOnly := authMiddleware.RequireRole(user.RoleAdmin)
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/freeze-requests/:id/approve", Handler: h.Freezes.Approve, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "/freeze-requests/:id/reject", Handler: h.Freezes.Reject, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "/freeze-requests/:id/activate", Handler: h.Freezes.Activate, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "/credit-issuance/run", Handler: h.Credits.RunIssuance, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "/members/:id/activate", Handler: h.Credits.ActivateMembership, Mw: []gin.HandlerFunc{adminOnly}},
			{
				Method:  http.MethodPost,
				Path:    "/sessions/:id/promote",
				Handler: h.Waitlist.Promote,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleStaff)},
			},
		})
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
