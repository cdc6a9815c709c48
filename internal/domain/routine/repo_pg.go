package routine

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

const cols = `id, user_id, time_of_day, activity, category, is_completed, created_at`

func scanRecord(row pgx.Row) (*Routine, error) {
	var r Routine
	err := row.Scan(&r.ID, &r.UserID, &r.TimeOfDay, &r.Activity, &r.Category, &r.IsCompleted, &r.CreatedAt)
	return &r, err
}

func (r *repoPG) Create(ctx context.Context, rt *Routine) error {
	rt.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO routines (id, user_id, time_of_day, activity, category, is_completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		rt.ID, rt.UserID, rt.TimeOfDay, rt.Activity, rt.Category, rt.IsCompleted).Scan(&rt.CreatedAt)
	if err != nil {
		return store.Classify(err)
	}
	return nil
}

// List returns the user's full day plan ordered by scheduled time.
func (r *repoPG) List(ctx context.Context, userID uuid.UUID) ([]*Routine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM routines WHERE user_id = $1 ORDER BY time_of_day ASC, created_at ASC`,
		userID)
	if err != nil {
		return nil, store.Classify(err)
	}
	defer rows.Close()

	var items []*Routine
	for rows.Next() {
		rt, err := scanRecord(rows)
		if err != nil {
			return nil, store.Classify(err)
		}
		items = append(items, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Classify(err)
	}
	return items, nil
}

func (r *repoPG) SetCompleted(ctx context.Context, userID, id uuid.UUID, done bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE routines SET is_completed = $1 WHERE id = $2 AND user_id = $3`, done, id, userID)
	if err != nil {
		return store.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM routines WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return store.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
