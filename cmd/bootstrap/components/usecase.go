package components

import (
	"log/slog"
	"time"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/config"
	"grooming-salon/internal/usecase"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"
	"grooming-salon/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewServiceCommands,
		commands.NewCustomerCommands,
		newBookingCommands,
		commands.NewTemplateCommands,
		newReminderCommands,
		newExportCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewServiceQueries,
		queries.NewCustomerQueries,
		queries.NewBookingQueries,
		queries.NewTemplateQueries,
		queries.NewRevenueQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newBookingCommands(uow shared.UnitOfWork, calc *booking.Calculator, cfg config.Config, clk clock.Clock) commands.BookingCommands {
	return commands.NewBookingCommands(uow, calc, commands.BookingPolicy{RejectOverlaps: cfg.Salon.RejectOverlaps}, clk)
}

func newReminderCommands(
	uow shared.UnitOfWork,
	source commands.ReminderSource,
	sender commands.MessageSender,
	cfg config.Config,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) commands.ReminderCommands {
	return commands.NewReminderCommands(uow, source, sender, cfg.Reminder.TemplateName, clk, loc, logger)
}

func newExportCommands(store commands.ArchiveStore, cfg config.Config, clk clock.Clock, loc *time.Location) commands.ExportCommands {
	return commands.NewExportCommands(store, cfg.Export.Prefix, clk, loc)
}
