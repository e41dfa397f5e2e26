package testimonial

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, t *Testimonial) error
	GetByID(ctx context.Context, id string) (*Testimonial, error)
	List(ctx context.Context, filter Filter) ([]*Testimonial, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, t *Testimonial) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.testimonials").
		Columns("patient_name", "rating", "treatment", "quote").
		Values(t.PatientName, t.Rating, t.Treatment, t.Quote).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create testimonial query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&t.ID, &t.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Testimonial, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "patient_name", "rating", "treatment", "quote", "created_at").
		From("public.testimonials").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get testimonial query failed: %w", err)
	}

	var t Testimonial
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.PatientName, &t.Rating, &t.Treatment, &t.Quote, &t.CreatedAt); err != nil {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Testimonial, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "patient_name", "rating", "treatment", "quote", "created_at",
		"count(*) OVER() as total_count",
	).
		From("public.testimonials")

	if filter.Treatment != "" {
		query = query.Where(squirrel.Eq{"treatment": filter.Treatment})
	}
	if filter.MinRating > 0 {
		query = query.Where(squirrel.GtOrEq{"rating": filter.MinRating})
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	query = query.OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list testimonials query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list testimonials failed: %w", err)
	}
	defer rows.Close()

	var testimonials []*Testimonial
	total := 0
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.PatientName, &t.Rating, &t.Treatment, &t.Quote, &t.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan testimonial failed: %w", err)
		}
		testimonials = append(testimonials, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate testimonials failed: %w", err)
	}

	return testimonials, total, nil
}
