package sleep

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

const cols = `id, user_id, duration_minutes, quality_rating, created_at`

func scanRecord(row pgx.Row) (*Session, error) {
	var s Session
	err := row.Scan(&s.ID, &s.UserID, &s.DurationMinutes, &s.Quality, &s.CreatedAt)
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Session) error {
	s.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO sleep_sessions (id, user_id, duration_minutes, quality_rating)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		s.ID, s.UserID, s.DurationMinutes, s.Quality).Scan(&s.CreatedAt)
	if err != nil {
		return store.Classify(err)
	}
	return nil
}

func (r *repoPG) ListLatest(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Session, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM sleep_sessions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, store.Classify(err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM sleep_sessions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, store.Classify(err)
	}
	defer rows.Close()

	var items []*Session
	for rows.Next() {
		s, err := scanRecord(rows)
		if err != nil {
			return nil, 0, store.Classify(err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, store.Classify(err)
	}
	return items, total, nil
}

func (r *repoPG) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM sleep_sessions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return store.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
