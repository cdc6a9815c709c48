package vitals

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wellness/wellness/internal/platform/store"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, user_id, systolic, diastolic, heart_rate, oxygen_level, created_at`

func scanRecord(row pgx.Row) (*VitalSign, error) {
	var v VitalSign
	err := row.Scan(&v.ID, &v.UserID, &v.Systolic, &v.Diastolic, &v.HeartRate, &v.OxygenLevel, &v.CreatedAt)
	return &v, err
}

func (r *repoPG) Create(ctx context.Context, v *VitalSign) error {
	v.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO vital_signs (id, user_id, systolic, diastolic, heart_rate, oxygen_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		v.ID, v.UserID, v.Systolic, v.Diastolic, v.HeartRate, v.OxygenLevel).Scan(&v.CreatedAt)
	if err != nil {
		return store.Classify(err)
	}
	return nil
}

func (r *repoPG) ListLatest(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*VitalSign, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM vital_signs WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, store.Classify(err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM vital_signs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, store.Classify(err)
	}
	defer rows.Close()

	var items []*VitalSign
	for rows.Next() {
		v, err := scanRecord(rows)
		if err != nil {
			return nil, 0, store.Classify(err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, store.Classify(err)
	}
	return items, total, nil
}

func (r *repoPG) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM vital_signs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return store.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
