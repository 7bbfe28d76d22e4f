package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"legalease/internal/domain"
)

const lawyerProfileColumns = `id, lawyer_id, full_name, phone_number, license_number, years_of_experience,
	current_working_location, min_price_etb, profile_image_url, created_at, updated_at`

type LawyerProfilePostgres struct {
	db *pgxpool.Pool
}

func NewLawyerProfilePostgres(db *pgxpool.Pool) *LawyerProfilePostgres {
	return &LawyerProfilePostgres{db: db}
}

func (r *LawyerProfilePostgres) Create(ctx context.Context, p domain.LawyerProfile) error {
	query := `
		INSERT INTO lawyer_profiles (` + lawyerProfileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		p.ID,
		p.LawyerID,
		p.FullName,
		p.PhoneNumber,
		p.LicenseNumber,
		p.YearsOfExperience,
		p.CurrentWorkingLocation,
		p.MinPriceETB,
		p.ProfileImageURL,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create lawyer profile: %w", pgError(err))
	}

	return nil
}

func (r *LawyerProfilePostgres) GetByID(ctx context.Context, id string) (*domain.LawyerProfile, error) {
	return r.getOne(ctx, `SELECT `+lawyerProfileColumns+` FROM lawyer_profiles WHERE id = $1`, id)
}

func (r *LawyerProfilePostgres) GetByLawyerID(ctx context.Context, lawyerID string) (*domain.LawyerProfile, error) {
	return r.getOne(ctx, `SELECT `+lawyerProfileColumns+` FROM lawyer_profiles WHERE lawyer_id = $1`, lawyerID)
}

func (r *LawyerProfilePostgres) List(ctx context.Context, limit, offset int) ([]domain.LawyerProfile, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM lawyer_profiles`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count lawyer profiles: %w", err)
	}

	query := `
		SELECT ` + lawyerProfileColumns + `
		FROM lawyer_profiles
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list lawyer profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.LawyerProfile{}
	for rows.Next() {
		p, err := scanLawyerProfile(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lawyer profile: %w", err)
		}
		profiles = append(profiles, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate lawyer profiles: %w", err)
	}

	return profiles, total, nil
}

func (r *LawyerProfilePostgres) Update(ctx context.Context, p domain.LawyerProfile) error {
	query := `
		UPDATE lawyer_profiles
		SET full_name = $1, phone_number = $2, license_number = $3, years_of_experience = $4,
			current_working_location = $5, min_price_etb = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		p.FullName,
		p.PhoneNumber,
		p.LicenseNumber,
		p.YearsOfExperience,
		p.CurrentWorkingLocation,
		p.MinPriceETB,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update lawyer profile: %w", pgError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *LawyerProfilePostgres) UpdateImage(ctx context.Context, id, imageURL string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE lawyer_profiles SET profile_image_url = $1, updated_at = NOW() WHERE id = $2`,
		imageURL, id,
	)
	if err != nil {
		return fmt.Errorf("update lawyer profile image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *LawyerProfilePostgres) getOne(ctx context.Context, query, arg string) (*domain.LawyerProfile, error) {
	p, err := scanLawyerProfile(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if err = pgError(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get lawyer profile: %w", err)
	}
	return p, nil
}

func scanLawyerProfile(row pgx.Row) (*domain.LawyerProfile, error) {
	var p domain.LawyerProfile
	err := row.Scan(
		&p.ID,
		&p.LawyerID,
		&p.FullName,
		&p.PhoneNumber,
		&p.LicenseNumber,
		&p.YearsOfExperience,
		&p.CurrentWorkingLocation,
		&p.MinPriceETB,
		&p.ProfileImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
