package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/handler/api"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Catalog *api.CatalogHandler
	Stock   *api.StockHandler
	Report  *api.ReportHandler
	Live    *api.LiveHandler
}

func NewHandlers(auth *api.AuthHandler, booking *api.BookingHandler, catalog *api.CatalogHandler, stock *api.StockHandler, report *api.ReportHandler, live *api.LiveHandler) Handlers {
	return Handlers{Auth: auth, Booking: booking, Catalog: catalog, Stock: stock, Report: report, Live: live}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, limiters *middleware.RateLimiters, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, limiters, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, limiters *middleware.RateLimiters, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	managerOnly := authMiddleware.RequireRoleAtLeast(staff.RoleManager)

	apiGroup := engine.Group("/api")
	apiGroup.Use(limiters.API)
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiters.Login}},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())

		bookings := authed.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.Update},
				{Method: http.MethodGet, Path: "/:id/summary", Handler: h.Booking.Summary},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Booking.CheckIn},
				{Method: http.MethodPost, Path: "/:id/undo-check-in", Handler: h.Booking.UndoCheckIn},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.Booking.Checkout},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/restore", Handler: h.Booking.Restore},
			})
		}

		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/pricing/preview", Handler: h.Booking.PricingPreview},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.Availability},
			{Method: http.MethodGet, Path: "/live", Handler: h.Live.Stream},
		})

		rooms := authed.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetRoom},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateRoom, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateRoom, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteRoom, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		extras := authed.Group("/extras")
		{
			addRoutes(extras, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListExtras},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetExtra},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateExtra, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateExtra, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteExtra, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		minibarItems := authed.Group("/minibar-items")
		{
			addRoutes(minibarItems, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListMinibarItems},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetMinibarItem},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateMinibarItem, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateMinibarItem, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteMinibarItem, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPost, Path: "/:id/restock", Handler: h.Catalog.Restock},
			})
		}

		stock := authed.Group("/stock")
		{
			addRoutes(stock, []route{
				{Method: http.MethodGet, Path: "/shortfalls", Handler: h.Stock.ListShortfalls},
				{Method: http.MethodPost, Path: "/reconcile", Handler: h.Stock.Reconcile},
			})
		}

		reports := authed.Group("/reports")
		reports.Use(managerOnly)
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Report.Revenue},
				{Method: http.MethodGet, Path: "/minibar-sales", Handler: h.Report.MinibarSales},
			})
		}

		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/settings", Handler: h.Catalog.GetSettings},
			{Method: http.MethodPut, Path: "/settings", Handler: h.Catalog.SaveSettings, Mw: []gin.HandlerFunc{managerOnly}},
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
