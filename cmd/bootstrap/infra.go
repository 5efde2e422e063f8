package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/infra/cache"
	"grooming-salon/internal/infra/messaging"
	"grooming-salon/internal/infra/metrics"
	"grooming-salon/internal/infra/scheduler"
	"grooming-salon/internal/infra/storage"
	"grooming-salon/internal/pkg/config"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"github.com/twilio/twilio-go"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		metrics.New,
		NewCatalogCache,
		NewMessageSender,
		NewArchiveStore,
	),
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartReminderScheduler),
)

type catalogCache interface {
	queries.ServiceCache
	commands.CatalogInvalidator
}

type CatalogCacheResult struct {
	fx.Out

	Cache       queries.ServiceCache
	Invalidator commands.CatalogInvalidator
}

// NewCatalogCache keeps the service list in Redis when REDIS_ADDR is set and
// otherwise reads through to Postgres every time.
func NewCatalogCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) CatalogCacheResult {
	var c catalogCache = cache.NoopServiceCache{}
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				// an unreachable cache only costs latency
				if err := client.Ping(ctx).Err(); err != nil {
					logger.Warn("redis unreachable, catalog cache will miss", "addr", cfg.Redis.Addr, "error", err)
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		c = cache.NewServiceCache(client, cfg.Redis.CacheTTL, logger)
	}
	return CatalogCacheResult{Cache: c, Invalidator: c}
}

func NewMessageSender(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) commands.MessageSender {
	if !cfg.Twilio.Enabled() {
		logger.Info("twilio not configured, reminders are logged instead of sent")
		return messaging.NewInstrumentedSender(messaging.NewLogSender(logger), m)
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.Twilio.AccountSID,
		Password: cfg.Twilio.AuthToken,
	})
	sender := messaging.NewTwilioSender(client.Api, cfg.Twilio.FromNumber, cfg.Twilio.WhatsAppNumber, logger)
	return messaging.NewInstrumentedSender(sender, m)
}

func NewArchiveStore(cfg config.Config, logger *slog.Logger) commands.ArchiveStore {
	if !cfg.Export.Enabled() {
		return storage.DisabledStore{}
	}
	return storage.NewS3Store(storage.NewS3Client(cfg.Export), cfg.Export.Bucket, logger)
}

func StartReminderScheduler(lc fx.Lifecycle, cfg config.Config, loc *time.Location, reminders commands.ReminderCommands, logger *slog.Logger) error {
	if !cfg.Reminder.Enabled {
		return nil
	}
	s, err := scheduler.NewReminderScheduler(cfg.Reminder.Schedule, loc, reminders, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
	return nil
}
