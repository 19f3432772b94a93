package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// OfferRepository defines persistence access for job offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.JobOffer) error
	List(ctx context.Context) ([]domain.JobOffer, error)
	GetByID(ctx context.Context, id int64) (*domain.JobOffer, error)
	Delete(ctx context.Context, id int64) error
}

type offerRepository struct {
	pool *pgxpool.Pool
}

// NewOfferRepository returns a Postgres-backed implementation.
func NewOfferRepository(pool *pgxpool.Pool) OfferRepository {
	return &offerRepository{pool: pool}
}

func (r *offerRepository) Create(ctx context.Context, offer *domain.JobOffer) error {
	const query = `
        INSERT INTO job_offer (title, description, company, salary, owner_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		offer.Title,
		offer.Description,
		offer.Company,
		offer.Salary,
		offer.OwnerID,
	).Scan(&offer.ID, &offer.CreatedAt)
}

func (r *offerRepository) List(ctx context.Context) ([]domain.JobOffer, error) {
	const query = `
        SELECT o.id, o.title, o.description, o.company, o.salary, o.owner_id, u.username, o.created_at
        FROM job_offer o
        JOIN user_app u ON u.id = o.owner_id
        ORDER BY o.created_at DESC, o.id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]domain.JobOffer, 0)
	for rows.Next() {
		var offer domain.JobOffer
		if err := rows.Scan(
			&offer.ID,
			&offer.Title,
			&offer.Description,
			&offer.Company,
			&offer.Salary,
			&offer.OwnerID,
			&offer.OwnerUsername,
			&offer.CreatedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

func (r *offerRepository) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	const query = `
        SELECT o.id, o.title, o.description, o.company, o.salary, o.owner_id, u.username, o.created_at
        FROM job_offer o
        JOIN user_app u ON u.id = o.owner_id
        WHERE o.id=$1`

	var offer domain.JobOffer
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&offer.ID,
		&offer.Title,
		&offer.Description,
		&offer.Company,
		&offer.Salary,
		&offer.OwnerID,
		&offer.OwnerUsername,
		&offer.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM job_offer WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
