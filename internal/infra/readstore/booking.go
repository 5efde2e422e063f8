package readstore

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/db"
	"grooming-salon/internal/pkg/pgconv"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// serviceNamesColumn keeps the selection order of service_ids.
const serviceNamesColumn = `ARRAY(
	SELECT s.name FROM unnest(b.service_ids) WITH ORDINALITY AS u(id, ord)
	JOIN services s ON s.id = u.id ORDER BY u.ord
) AS service_names`

type BookingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(dbtx db.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{db: dbtx, logger: logger}
}

func bookingSelect() squirrel.SelectBuilder {
	return psql.
		Select(
			"b.id", "b.customer_id", "b.service_ids", "b.start_time", "b.end_time", "b.status",
			"b.total_price", "b.memo", "b.color", "b.created_by", "b.created_at", "b.updated_at",
			"c.guardian_name", "c.pet_name", "c.phone",
		).
		From("bookings b").
		Join("customers c ON c.id = b.customer_id")
}

func bookingRangeQuery(start, end time.Time) squirrel.SelectBuilder {
	return bookingSelect().
		Where(squirrel.GtOrEq{"b.start_time": start}).
		Where(squirrel.LtOrEq{"b.start_time": end}).
		OrderBy("b.start_time", "b.id")
}

func scheduledQuery(start, end time.Time) squirrel.SelectBuilder {
	return psql.
		Select("b.id", "b.start_time", "c.guardian_name", "c.pet_name", "c.phone", "b.memo", serviceNamesColumn).
		From("bookings b").
		Join("customers c ON c.id = b.customer_id").
		Where(squirrel.Eq{"b.status": booking.StatusScheduled.String()}).
		Where(squirrel.GtOrEq{"b.start_time": start}).
		Where(squirrel.LtOrEq{"b.start_time": end}).
		OrderBy("b.start_time")
}

func (s *BookingReadStore) FindRange(ctx context.Context, start, end time.Time) ([]*queries.BookingView, error) {
	query, args, err := bookingRangeQuery(start, end).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build booking range query", err)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to list bookings", err)
	}
	defer rows.Close()

	out := make([]*queries.BookingView, 0)
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, "failed to scan booking", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to iterate bookings", err)
	}
	return out, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := bookingSelect().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build booking query", err)
	}
	v, err := scanBookingView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to find booking", err)
	}
	return v, nil
}

// ScheduledBetween feeds the reminder job.
func (s *BookingReadStore) ScheduledBetween(ctx context.Context, start, end time.Time) ([]commands.ReminderTarget, error) {
	query, args, err := scheduledQuery(start, end).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to build reminder query", err)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to list scheduled bookings", err)
	}
	defer rows.Close()

	out := make([]commands.ReminderTarget, 0)
	for rows.Next() {
		var (
			t           commands.ReminderTarget
			phone, memo pgtype.Text
		)
		if err := rows.Scan(&t.BookingID, &t.StartTime, &t.GuardianName, &t.PetName, &phone, &memo, &t.ServiceNames); err != nil {
			return nil, infra.WrapRepoErr(s.logger, "failed to scan scheduled booking", err)
		}
		t.Phone = pgconv.StringPtrFromPgtype(phone)
		t.Memo = pgconv.StringPtrFromPgtype(memo)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, "failed to iterate scheduled bookings", err)
	}
	return out, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v           queries.BookingView
		totalPrice  pgtype.Int8
		memo, phone pgtype.Text
		createdBy   pgtype.UUID
	)
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.ServiceIDs, &v.StartTime, &v.EndTime, &v.Status,
		&totalPrice, &memo, &v.Color, &createdBy, &v.CreatedAt, &v.UpdatedAt,
		&v.Customer.GuardianName, &v.Customer.PetName, &phone,
	)
	if err != nil {
		return nil, err
	}
	v.TotalPrice = pgconv.Int64PtrFromPgtype(totalPrice)
	v.Memo = pgconv.StringPtrFromPgtype(memo)
	if createdBy.Valid {
		id := uuid.UUID(createdBy.Bytes)
		v.CreatedBy = &id
	}
	v.Customer.ID = v.CustomerID
	v.Customer.Phone = pgconv.StringPtrFromPgtype(phone)
	return &v, nil
}
