package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"legalease/internal/domain"
)

const caseColumns = `id, title, description, case_type, client_id, lawyer_profile_id, slot_id,
	case_file_key, status, created_at, updated_at`

type CasePostgres struct {
	db *pgxpool.Pool
}

func NewCasePostgres(db *pgxpool.Pool) *CasePostgres {
	return &CasePostgres{db: db}
}

func (r *CasePostgres) Create(ctx context.Context, c domain.Case) error {
	query := `
		INSERT INTO cases (` + caseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		c.ID,
		c.Title,
		c.Description,
		c.CaseType,
		c.ClientID,
		c.LawyerProfileID,
		c.SlotID,
		c.CaseFileKey,
		c.Status,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create case: %w", pgError(err))
	}

	return nil
}

func (r *CasePostgres) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	c, err := scanCase(r.db.QueryRow(ctx, `SELECT `+caseColumns+` FROM cases WHERE id = $1`, id))
	if err != nil {
		if err = pgError(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get case: %w", err)
	}
	return c, nil
}

func (r *CasePostgres) ListByClient(ctx context.Context, clientID string) ([]domain.Case, error) {
	return r.list(ctx,
		`SELECT `+caseColumns+` FROM cases WHERE client_id = $1 ORDER BY created_at DESC`,
		clientID,
	)
}

func (r *CasePostgres) ListByLawyerProfile(ctx context.Context, profileID string) ([]domain.Case, error) {
	return r.list(ctx,
		`SELECT `+caseColumns+` FROM cases WHERE lawyer_profile_id = $1 ORDER BY created_at DESC`,
		profileID,
	)
}

func (r *CasePostgres) StatsByLawyerProfile(ctx context.Context, profileID string) (domain.LawyerStats, error) {
	var stats domain.LawyerStats
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT client_id) FROM cases WHERE lawyer_profile_id = $1`,
		profileID,
	).Scan(&stats.Cases, &stats.Clients)
	if err != nil {
		return domain.LawyerStats{}, fmt.Errorf("case stats: %w", err)
	}
	return stats, nil
}

func (r *CasePostgres) list(ctx context.Context, query string, args ...any) ([]domain.Case, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	cases := []domain.Case{}
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		cases = append(cases, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}

	return cases, nil
}

func scanCase(row pgx.Row) (*domain.Case, error) {
	var c domain.Case
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.CaseType,
		&c.ClientID,
		&c.LawyerProfileID,
		&c.SlotID,
		&c.CaseFileKey,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.HasDocument = c.CaseFileKey != ""
	return &c, nil
}
