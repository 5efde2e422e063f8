package components

import (
	"grooming-salon/internal/handler"
	"grooming-salon/internal/handler/api"
	"grooming-salon/internal/handler/middleware"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/config"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		newAuthHandler,
		api.NewUserHandler,
		api.NewServiceHandler,
		api.NewCustomerHandler,
		api.NewBookingHandler,
		api.NewTemplateHandler,
		api.NewRevenueHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func newAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config, clk clock.Clock) *api.AuthHandler {
	return api.NewAuthHandler(cmds, users, cfg.Cookie, clk)
}
