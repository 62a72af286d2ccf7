package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"relecloud-api/internal/domain/user"
	"relecloud-api/internal/handler/api"
	"relecloud-api/internal/handler/middleware"
	"relecloud-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Destination *api.DestinationHandler
	Cruise      *api.CruiseHandler
	Review      *api.ReviewHandler
	InfoRequest *api.InfoRequestHandler
	Purchase    *api.PurchaseHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		adminOnly := []gin.HandlerFunc{
			authMiddleware.RequireAuth(),
			authMiddleware.RequireRoleAtLeast(user.RoleAdmin),
		}

		destinations := apiGroup.Group("/destinations")
		{
			addRoutes(destinations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Destination.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Destination.Get, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByDestination},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodPost, Path: "/:id/purchase", Handler: h.Purchase.BuyDestination, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodPost, Path: "", Handler: h.Destination.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Destination.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Destination.Delete, Mw: adminOnly},
			})
		}

		cruises := apiGroup.Group("/cruises")
		{
			addRoutes(cruises, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cruise.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Cruise.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Cruise.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Cruise.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Cruise.Delete, Mw: adminOnly},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		infoRequests := apiGroup.Group("/info-requests")
		{
			addRoutes(infoRequests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.InfoRequest.Submit},
				{Method: http.MethodGet, Path: "", Handler: h.InfoRequest.List, Mw: adminOnly},
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
