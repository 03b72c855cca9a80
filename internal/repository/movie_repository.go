package repository

import (
	"context"
	"database/sql"

	"github.com/umans-tech/cinematch-backend/internal/catalog"
	"github.com/umans-tech/cinematch-backend/internal/model"
)

// MovieRepo provides read access to the globally shared movie catalog
// and the lazy seed step that populates it on first use.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo returns a new MovieRepo bound to the given database.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

const movieCols = `id, title, year, genre, poster_url, description`

func scanMovie(scan func(dest ...any) error) (model.Movie, error) {
	var m model.Movie
	var year sql.NullInt64
	var genre, poster, desc sql.NullString
	if err := scan(&m.ID, &m.Title, &year, &genre, &poster, &desc); err != nil {
		return model.Movie{}, err
	}
	if year.Valid {
		y := int(year.Int64)
		m.Year = &y
	}
	if genre.Valid {
		g := genre.String
		m.Genre = &g
	}
	if poster.Valid {
		p := poster.String
		m.PosterURL = &p
	}
	if desc.Valid {
		d := desc.String
		m.Description = &d
	}
	return m, nil
}

// SeedIfEmpty bulk-inserts the static catalog when the movies table is
// empty.  The count check and the insert run in one transaction so the
// seed is all-or-nothing and safe to call on every catalog read; a
// losing concurrent seeder observes a non-zero count and does nothing.
func (r *MovieRepo) SeedIfEmpty(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		committed = true
		return tx.Commit()
	}

	query := `INSERT INTO movies (title, year, genre, description) VALUES `
	args := make([]any, 0, len(catalog.Movies)*4)
	for i, e := range catalog.Movies {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, e.Title, e.Year, e.Genre, e.Description)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	committed = true
	return tx.Commit()
}

// ListAll returns the whole catalog ordered by id for deterministic
// responses.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies ORDER BY id`
	return r.queryMovies(ctx, q)
}

// ListUnvoted returns the movies the given participant has not voted on
// yet.  Votes are filtered by participant id alone, not additionally by
// room; participants belong to exactly one room, so the narrower filter
// is equivalent and kept for compatibility.
func (r *MovieRepo) ListUnvoted(ctx context.Context, participantID int64) ([]model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies
		WHERE id NOT IN (SELECT movie_id FROM votes WHERE participant_id = ?)
		ORDER BY id`
	return r.queryMovies(ctx, q, participantID)
}

// GetByID fetches a single movie.  sql.ErrNoRows propagates to the
// caller; the catalog is never mutated, so a missing id is a caller bug.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies WHERE id = ?`
	m, err := scanMovie(r.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepo) queryMovies(ctx context.Context, query string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
