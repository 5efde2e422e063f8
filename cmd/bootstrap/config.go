package bootstrap

import (
	"time"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/infra/rulefile"
	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/config"
	"grooming-salon/internal/pkg/timezone"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
		NewSalonLocation,
		NewCalculator,
	),
)

// NewSalonLocation is the zone every "same day" comparison happens in.
func NewSalonLocation(cfg config.Config) (*time.Location, error) {
	return timezone.Load(cfg.Salon.TimeZone)
}

func NewCalculator(cfg config.Config) (*booking.Calculator, error) {
	rules, err := rulefile.Load(cfg.Salon.RulesFile)
	if err != nil {
		return nil, err
	}
	return booking.NewCalculator(rules), nil
}
