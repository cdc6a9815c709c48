package medication

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

const cols = `id, user_id, name, dosage, frequency, time_of_day, category, notes, reminder_enabled, created_at`

func scanRecord(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.TimeOfDay,
		&m.Category, &m.Notes, &m.ReminderEnabled, &m.CreatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO medications (id, user_id, name, dosage, frequency, time_of_day, category, notes, reminder_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		m.ID, m.UserID, m.Name, m.Dosage, m.Frequency, m.TimeOfDay, m.Category, m.Notes, m.ReminderEnabled).
		Scan(&m.CreatedAt)
	if err != nil {
		return store.Classify(err)
	}
	return nil
}

// List returns the user's full day plan ordered by intake time.
func (r *repoPG) List(ctx context.Context, userID uuid.UUID) ([]*Medication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM medications WHERE user_id = $1 ORDER BY time_of_day ASC, created_at ASC`,
		userID)
	if err != nil {
		return nil, store.Classify(err)
	}
	defer rows.Close()

	var items []*Medication
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, store.Classify(err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Classify(err)
	}
	return items, nil
}

func (r *repoPG) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM medications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return store.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

type catalogRepoPG struct{ pool *pgxpool.Pool }

func NewCatalogRepoPG(pool *pgxpool.Pool) CatalogRepository {
	return &catalogRepoPG{pool: pool}
}

func (r *catalogRepoPG) List(ctx context.Context) ([]*CatalogOption, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, category, default_dosage, default_frequency, COALESCE(notes, '')
		FROM medication_catalog ORDER BY name ASC`)
	if err != nil {
		return nil, store.Classify(err)
	}
	defer rows.Close()

	var options []*CatalogOption
	for rows.Next() {
		var opt CatalogOption
		if err := rows.Scan(&opt.ID, &opt.Name, &opt.Category, &opt.DefaultDosage, &opt.DefaultFrequency, &opt.Notes); err != nil {
			return nil, store.Classify(err)
		}
		options = append(options, &opt)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Classify(err)
	}
	return options, nil
}
