package water

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

const cols = `id, user_id, amount_ml, created_at`

func scanRecord(row pgx.Row) (*Intake, error) {
	var w Intake
	err := row.Scan(&w.ID, &w.UserID, &w.AmountML, &w.CreatedAt)
	return &w, err
}

func (r *repoPG) Create(ctx context.Context, w *Intake) error {
	w.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO water_intake (id, user_id, amount_ml)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		w.ID, w.UserID, w.AmountML).Scan(&w.CreatedAt)
	if err != nil {
		return store.Classify(err)
	}
	return nil
}

func (r *repoPG) ListLatest(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Intake, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM water_intake WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, store.Classify(err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM water_intake WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, store.Classify(err)
	}
	defer rows.Close()

	var items []*Intake
	for rows.Next() {
		w, err := scanRecord(rows)
		if err != nil {
			return nil, 0, store.Classify(err)
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, store.Classify(err)
	}
	return items, total, nil
}

func (r *repoPG) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM water_intake WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return store.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
