package repository

import (
	"context"
	"log/slog"
	"time"

	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/infra"
	"grooming-salon/internal/infra/db"
	"grooming-salon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// scheduleLockKey identifies the advisory lock taken by booking writers.
const scheduleLockKey int64 = 0x67726f6f6d

const bookingColumns = `id, customer_id, service_ids, start_time, end_time, status, total_price, memo, color, created_by, created_at, updated_at`

type BookingRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingRepository(dbtx db.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: dbtx, logger: logger}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Overlapping(ctx context.Context, start, end time.Time, exclude uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings
		WHERE status <> $1 AND start_time < $3 AND end_time > $2 AND id <> $4
		ORDER BY start_time`,
		booking.StatusCancelled.String(), start, end, exclude)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to query overlapping bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, "failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to iterate bookings", err)
	}
	return out, nil
}

func (r *BookingRepository) LockSchedule(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, scheduleLockKey); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to lock schedule", err)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID(), b.CustomerID(), b.ServiceIDs(), b.StartTime(), b.EndTime(), b.Status().String(),
		pgconv.Int64PtrToPgtype(b.TotalPrice()), pgconv.StringPtrToPgtype(b.Memo()), b.Color().String(),
		pgconv.UUIDToPgtype(b.CreatedBy()), b.CreatedAt(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `UPDATE bookings SET
			customer_id = $2, service_ids = $3, start_time = $4, end_time = $5, status = $6,
			total_price = $7, memo = $8, color = $9, updated_at = $10
		WHERE id = $1`,
		b.ID(), b.CustomerID(), b.ServiceIDs(), b.StartTime(), b.EndTime(), b.Status().String(),
		pgconv.Int64PtrToPgtype(b.TotalPrice()), pgconv.StringPtrToPgtype(b.Memo()), b.Color().String(),
		b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("booking not found")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("booking not found")
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, customerID       uuid.UUID
		serviceIDs           []uuid.UUID
		start, end           time.Time
		status, color        string
		totalPrice           pgtype.Int8
		memo                 pgtype.Text
		createdBy            pgtype.UUID
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &customerID, &serviceIDs, &start, &end, &status,
		&totalPrice, &memo, &color, &createdBy, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		id, customerID, serviceIDs, start, end,
		booking.Color(color), booking.Status(status),
		pgconv.Int64PtrFromPgtype(totalPrice), pgconv.StringPtrFromPgtype(memo),
		pgconv.UUIDFromPgtype(createdBy), createdAt, updatedAt,
	), nil
}
