package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"legalease/internal/domain"
)

const slotColumns = `id, lawyer_id, available_date::text, start_time, end_time, start_minute, end_minute,
	status, created_at, updated_at`

type SlotPostgres struct {
	db *pgxpool.Pool
}

func NewSlotPostgres(db *pgxpool.Pool) *SlotPostgres {
	return &SlotPostgres{db: db}
}

func (r *SlotPostgres) Create(ctx context.Context, slot domain.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (
			id, lawyer_id, available_date, start_time, end_time, start_minute, end_minute,
			status, created_at, updated_at
		) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(
		ctx,
		query,
		slot.ID,
		slot.LawyerID,
		slot.AvailableDate,
		slot.StartTime,
		slot.EndTime,
		slot.StartMinute,
		slot.EndMinute,
		slot.Status,
		slot.CreatedAt,
		slot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create slot: %w", pgError(err))
	}

	return nil
}

func (r *SlotPostgres) GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	slot, err := scanSlot(r.db.QueryRow(ctx, `SELECT `+slotColumns+` FROM availability_slots WHERE id = $1`, id))
	if err != nil {
		if err = pgError(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return slot, nil
}

func (r *SlotPostgres) ListByLawyerAndDate(ctx context.Context, lawyerID, date string) ([]domain.AvailabilitySlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM availability_slots
		WHERE lawyer_id = $1 AND available_date = $2::date
		ORDER BY start_minute
	`
	return r.list(ctx, query, lawyerID, date)
}

func (r *SlotPostgres) ListByLawyer(ctx context.Context, lawyerID string) ([]domain.AvailabilitySlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM availability_slots
		WHERE lawyer_id = $1
		ORDER BY available_date, start_minute
	`
	return r.list(ctx, query, lawyerID)
}

func (r *SlotPostgres) DeleteActive(ctx context.Context, id, lawyerID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM availability_slots WHERE id = $1 AND lawyer_id = $2 AND status = $3`,
		id, lawyerID, domain.SlotStatusActive,
	)
	if err != nil {
		return fmt.Errorf("delete slot: %w", pgError(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *SlotPostgres) SetStatus(ctx context.Context, id string, from, to domain.SlotStatus) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE availability_slots SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		to, id, from,
	)
	if err != nil {
		return false, fmt.Errorf("set slot status: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *SlotPostgres) list(ctx context.Context, query string, args ...any) ([]domain.AvailabilitySlot, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	slots := []domain.AvailabilitySlot{}
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, *slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}

	return slots, nil
}

func scanSlot(row pgx.Row) (*domain.AvailabilitySlot, error) {
	var slot domain.AvailabilitySlot
	err := row.Scan(
		&slot.ID,
		&slot.LawyerID,
		&slot.AvailableDate,
		&slot.StartTime,
		&slot.EndTime,
		&slot.StartMinute,
		&slot.EndMinute,
		&slot.Status,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
