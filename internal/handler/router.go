package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"grooming-salon/internal/domain/user"
	"grooming-salon/internal/handler/api"
	"grooming-salon/internal/handler/middleware"
	"grooming-salon/internal/infra/metrics"
	"grooming-salon/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Metrics        *metrics.Metrics
	AuthMiddleware *middleware.AuthMiddleware

	Auth     *api.AuthHandler
	Users    *api.UserHandler
	Services *api.ServiceHandler
	Customer *api.CustomerHandler
	Bookings *api.BookingHandler
	Template *api.TemplateHandler
	Revenue  *api.RevenueHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	if p.Config.Metrics.Enabled {
		p.Engine.Use(middleware.Metrics(p.Metrics))
	}
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled {
		engine.GET(p.Config.Metrics.Path, gin.WrapH(p.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()
	adminOnly := []gin.HandlerFunc{p.AuthMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(requireAuth, p.AuthMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Users.List},
				{Method: http.MethodPost, Path: "", Handler: p.Users.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Users.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.Users.Update},
				{Method: http.MethodPut, Path: "/:id/password", Handler: p.Users.ResetPassword},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Users.Delete},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(requireAuth)
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Services.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Services.Get},
				{Method: http.MethodPost, Path: "", Handler: p.Services.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: p.Services.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Services.Delete, Mw: adminOnly},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(requireAuth)
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Customer.List},
				{Method: http.MethodGet, Path: "/search", Handler: p.Customer.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Customer.Get},
				{Method: http.MethodPost, Path: "", Handler: p.Customer.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.Customer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Customer.Delete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Bookings.ListRange},
				{Method: http.MethodGet, Path: "/month", Handler: p.Bookings.ListMonth},
				{Method: http.MethodGet, Path: "/day", Handler: p.Bookings.Day},
				{Method: http.MethodGet, Path: "/grid", Handler: p.Bookings.MonthGrid},
				{Method: http.MethodPost, Path: "/quote", Handler: p.Bookings.Quote},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Bookings.Get},
				{Method: http.MethodPost, Path: "", Handler: p.Bookings.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.Bookings.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Bookings.Delete},
			})
		}

		templates := apiGroup.Group("/templates")
		templates.Use(requireAuth)
		{
			addRoutes(templates, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Template.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Template.Get},
				{Method: http.MethodPost, Path: "/:id/preview", Handler: p.Template.Preview},
				{Method: http.MethodPost, Path: "", Handler: p.Template.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: p.Template.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Template.Delete, Mw: adminOnly},
			})
		}

		reminders := apiGroup.Group("/reminders")
		reminders.Use(requireAuth)
		{
			addRoutes(reminders, []route{
				{Method: http.MethodPost, Path: "/send", Handler: p.Template.SendReminders, Mw: adminOnly},
			})
		}

		revenue := apiGroup.Group("/revenue")
		revenue.Use(requireAuth)
		{
			addRoutes(revenue, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Revenue.Report},
				{Method: http.MethodGet, Path: "/export", Handler: p.Revenue.Export},
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
