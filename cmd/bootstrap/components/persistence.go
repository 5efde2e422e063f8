package components

import (
	"grooming-salon/internal/infra/readstore"
	"grooming-salon/internal/infra/uow"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"

	"go.uber.org/fx"
)

// Writes go through the unit of work, which builds its repositories per
// transaction. Reads use the pool directly.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(uow.NewPostgresUoW),
	readstoreModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.ReminderSource)),
		),
		fx.Annotate(
			readstore.NewTemplateReadStore,
			fx.As(new(queries.TemplateReadStore)),
		),
		fx.Annotate(
			readstore.NewRevenueReadStore,
			fx.As(new(queries.RevenueReadStore)),
		),
	),
)
