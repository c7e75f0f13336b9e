package postgres

import (
	"context"
	"errors"
	"fmt"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FeeSettingRepo implements ports.FeeSettingRepository.
type FeeSettingRepo struct {
	pool Pool
}

func NewFeeSettingRepo(pool Pool) *FeeSettingRepo {
	return &FeeSettingRepo{pool: pool}
}

func (r *FeeSettingRepo) Create(ctx context.Context, f *domain.FeeSetting) error {
	query := `INSERT INTO fee_settings (id, name, fee_type, value, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.pool.Exec(ctx, query, f.ID, f.Name, f.FeeType, f.Value, f.CreatedAt); err != nil {
		return fmt.Errorf("insert fee setting: %w", err)
	}
	return nil
}

func (r *FeeSettingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeSetting, error) {
	query := `SELECT id, name, fee_type, value, created_at FROM fee_settings WHERE id = $1`

	f := &domain.FeeSetting{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.FeeType, &f.Value, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fee setting: %w", err)
	}
	return f, nil
}

func (r *FeeSettingRepo) List(ctx context.Context) ([]domain.FeeSetting, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, fee_type, value, created_at FROM fee_settings ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list fee settings: %w", err)
	}
	defer rows.Close()

	var out []domain.FeeSetting
	for rows.Next() {
		var f domain.FeeSetting
		if err := rows.Scan(&f.ID, &f.Name, &f.FeeType, &f.Value, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fee setting: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
