package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByConfirmation(ctx context.Context, number string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// SlotTaken reports whether an active booking already holds the given
	// date and time slot. Cancelled bookings do not count.
	SlotTaken(ctx context.Context, date time.Time, timeSlot string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"confirmation_number", "service_id", "service_name", "date", "time_slot",
			"patient_name", "patient_email", "patient_phone", "notes", "status",
		).
		Values(
			b.ConfirmationNumber, b.ServiceID, b.ServiceName, b.Date, b.TimeSlot,
			b.PatientName, b.PatientEmail, b.PatientPhone, b.Notes, b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		// Partial unique index on (date, time_slot) where status != 'cancelled'
		// guards against double-booking a slot.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	return r.getByColumn(ctx, "id", id)
}

func (r *pgxRepository) GetByConfirmation(ctx context.Context, number string) (*Booking, error) {
	return r.getByColumn(ctx, "confirmation_number", number)
}

func (r *pgxRepository) getByColumn(ctx context.Context, column, value string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "confirmation_number", "service_id", "service_name", "date", "time_slot",
		"patient_name", "patient_email", "patient_phone", "notes", "status",
		"created_at", "updated_at",
	).
		From("public.bookings").
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.ConfirmationNumber, &b.ServiceID, &b.ServiceName, &b.Date, &b.TimeSlot,
		&b.PatientName, &b.PatientEmail, &b.PatientPhone, &b.Notes, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "confirmation_number", "service_id", "service_name", "date", "time_slot",
		"patient_name", "patient_email", "patient_phone", "notes", "status",
		"created_at", "updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings")

	if filter.ServiceID != "" {
		query = query.Where(squirrel.Eq{"service_id": filter.ServiceID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"date": filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"date": filter.DateTo})
	}

	orderBy := "date"
	if filter.SortBy != "" {
		orderBy = filter.SortBy
	}
	direction := "ASC"
	if filter.SortOrder == "DESC" {
		direction = "DESC"
	}
	query = query.OrderBy(orderBy + " " + direction)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	query = query.Limit(uint64(pageSize)).Offset(uint64((page - 1) * pageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	total := 0
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ConfirmationNumber, &b.ServiceID, &b.ServiceName, &b.Date, &b.TimeSlot,
			&b.PatientName, &b.PatientEmail, &b.PatientPhone, &b.Notes, &b.Status,
			&b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings failed: %w", err)
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SlotTaken(ctx context.Context, date time.Time, timeSlot string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"date": date, "time_slot": timeSlot}).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build slot taken query failed: %w", err)
	}

	var one int
	err = r.pool.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check slot taken failed: %w", err)
	}
	return true, nil
}
