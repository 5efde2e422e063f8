package readstore

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/db"
	"grooming-salon/internal/pkg/pgconv"
	"grooming-salon/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

type RevenueReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewRevenueReadStore(dbtx db.DBTX, logger *slog.Logger) *RevenueReadStore {
	return &RevenueReadStore{db: dbtx, logger: logger}
}

func completedQuery(start, end time.Time) squirrel.SelectBuilder {
	return psql.
		Select("start_time", "total_price", "service_ids").
		From("bookings").
		Where(squirrel.Eq{"status": booking.StatusCompleted.String()}).
		Where(squirrel.GtOrEq{"start_time": start}).
		Where(squirrel.LtOrEq{"start_time": end}).
		OrderBy("start_time")
}

func (s *RevenueReadStore) CompletedBetween(ctx context.Context, start, end time.Time) ([]queries.RevenueRow, error) {
	query, args, err := completedQuery(start, end).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build revenue query", err)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to load completed bookings", err)
	}
	defer rows.Close()

	out := make([]queries.RevenueRow, 0)
	for rows.Next() {
		var (
			r     queries.RevenueRow
			total pgtype.Int8
		)
		if err := rows.Scan(&r.StartTime, &total, &r.ServiceIDs); err != nil {
			return nil, infra.WrapRepoErr(s.logger, "failed to scan completed booking", err)
		}
		r.TotalPrice = pgconv.Int64PtrFromPgtype(total)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to iterate completed bookings", err)
	}
	return out, nil
}
