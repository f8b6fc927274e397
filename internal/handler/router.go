package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/infra/metrics"
	"travel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	User    *api.UserHandler
	Listing *api.ListingHandler
	Review  *api.ReviewHandler
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, collectors *metrics.Collectors, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	api.UseJSONFieldNames()
	setupMiddleware(engine, cfg, logger, collectors)
	setupRoutes(engine, collectors, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, collectors *metrics.Collectors) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(collectors))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, collectors *metrics.Collectors, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(collectors.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.User.Register},
			{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get, Mw: []gin.HandlerFunc{requireAuth}},
		})

		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Listing.List},
				{Method: http.MethodGet, Path: "/:slug", Handler: h.Listing.Get},
				{Method: http.MethodGet, Path: "/:slug/reviews", Handler: h.Review.List},
				{
					Method:  http.MethodPost,
					Path:    "",
					Handler: h.Listing.Create,
					Mw:      []gin.HandlerFunc{requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleHost)},
				},
			})

			// ownership is checked by the use cases
			owned := listings.Group("")
			owned.Use(requireAuth)
			addRoutes(owned, []route{
				{Method: http.MethodPatch, Path: "/:slug", Handler: h.Listing.Update},
				{Method: http.MethodDelete, Path: "/:slug", Handler: h.Listing.Delete},
				{Method: http.MethodPut, Path: "/:slug/availability", Handler: h.Listing.SetAvailability},
				{Method: http.MethodPost, Path: "/:slug/reviews", Handler: h.Review.Create},
				{Method: http.MethodPut, Path: "/:slug/reviews/:id", Handler: h.Review.Update},
				{Method: http.MethodDelete, Path: "/:slug/reviews/:id", Handler: h.Review.Delete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Booking.Payments},
			})
		}
	}

	// The gateway calls back here, so these keep their public paths outside /api.
	payments := engine.Group("/payments")
	{
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "/initialize-payment/", Handler: h.Payment.Initialize},
			{Method: http.MethodGet, Path: "/verify-payment/:tx_ref/", Handler: h.Payment.Verify},
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
