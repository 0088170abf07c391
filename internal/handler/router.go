package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/handler/api"
	"rental-booking/internal/handler/middleware"
	"rental-booking/internal/handler/validation"
	"rental-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth        *api.AuthHandler
	Listing     *api.ListingHandler
	Reservation *api.ReservationHandler
	Blackout    *api.BlackoutHandler
	Review      *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	hostOnly := authMiddleware.RequireRole(user.RoleHost)
	adminOnly := authMiddleware.RequireRole()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Listing.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Listing.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Listing.Availability},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: h.Listing.Calendar},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByListing},
				{Method: http.MethodGet, Path: "/:id/rating-stats", Handler: h.Review.RatingStats},
			})

			hosted := listings.Group("")
			hosted.Use(authMiddleware.RequireAuth())
			addRoutes(hosted, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Listing.Create, Mw: []gin.HandlerFunc{hostOnly}},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Listing.ListMine, Mw: []gin.HandlerFunc{hostOnly}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Listing.Update, Mw: []gin.HandlerFunc{hostOnly}},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Listing.ChangeStatus, Mw: []gin.HandlerFunc{hostOnly}},
				{Method: http.MethodPost, Path: "/:id/blackouts", Handler: h.Blackout.Block, Mw: []gin.HandlerFunc{hostOnly}},
				{Method: http.MethodGet, Path: "/:id/blackouts", Handler: h.Blackout.List, Mw: []gin.HandlerFunc{hostOnly}},
				{Method: http.MethodDelete, Path: "/:id/blackouts/:date", Handler: h.Blackout.Unblock, Mw: []gin.HandlerFunc{hostOnly}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/host", Handler: h.Reservation.ListForHost, Mw: []gin.HandlerFunc{hostOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm, Mw: []gin.HandlerFunc{hostOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Reservation.Reject, Mw: []gin.HandlerFunc{hostOnly}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPut, Path: "/:id/payment", Handler: h.Reservation.RecordPayment, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
			})

			authRequired := reviews.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
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
