package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Camiloaranda07/Springboot-platzi/internal/domain"
)

// PostgresMovieStore implements MovieStore on top of PostgreSQL.
//
// Expected schema:
//
//	CREATE TABLE movies (
//	    id            TEXT PRIMARY KEY,
//	    titulo        TEXT NOT NULL UNIQUE,
//	    duracion      INTEGER,
//	    genero        TEXT,
//	    fecha_estreno DATE,
//	    clasificacion NUMERIC(2,1),
//	    estado        CHAR(1)
//	);
//
// The unique index on titulo is a backstop for the service-side uniqueness
// check; a violation surfaces as AlreadyExistsError.
type PostgresMovieStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostgresMovieStore(db *sqlx.DB, logger *slog.Logger) (*PostgresMovieStore, error) {
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}
	return &PostgresMovieStore{db: db, logger: logger}, nil
}

const selectMovieColumns = `SELECT id, titulo, duracion, COALESCE(genero, '') AS genero,
       fecha_estreno, clasificacion, COALESCE(estado, '') AS estado
  FROM movies`

func (s *PostgresMovieStore) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	query := selectMovieColumns + ` ORDER BY titulo`

	var movies []*domain.Movie
	if err := s.db.SelectContext(ctx, &movies, query); err != nil {
		s.logger.ErrorContext(ctx, "failed to list movies", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (s *PostgresMovieStore) FindAllByState(ctx context.Context, state string) ([]*domain.Movie, error) {
	query := selectMovieColumns + ` WHERE estado = $1 ORDER BY titulo`

	var movies []*domain.Movie
	if err := s.db.SelectContext(ctx, &movies, query, state); err != nil {
		s.logger.ErrorContext(ctx, "failed to list movies by state", slog.String("state", state), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list movies by state: %w", err)
	}
	return movies, nil
}

func (s *PostgresMovieStore) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	query := selectMovieColumns + ` WHERE id = $1`

	var movie domain.Movie
	if err := s.db.GetContext(ctx, &movie, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		s.logger.ErrorContext(ctx, "failed to get movie by id", slog.String("movieID", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}
	return &movie, nil
}

func (s *PostgresMovieStore) FindFirstByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	query := selectMovieColumns + ` WHERE titulo = $1 LIMIT 1`

	var movie domain.Movie
	if err := s.db.GetContext(ctx, &movie, query, title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.ErrorContext(ctx, "failed to get movie by title", slog.String("title", title), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get movie by title: %w", err)
	}
	return &movie, nil
}

func (s *PostgresMovieStore) Save(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if movie.ID == "" {
		movie.ID = uuid.NewString()
		return s.insert(ctx, movie)
	}
	return s.update(ctx, movie)
}

func (s *PostgresMovieStore) insert(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	query := `INSERT INTO movies (id, titulo, duracion, genero, fecha_estreno, clasificacion, estado)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	s.logger.DebugContext(ctx, "inserting movie", slog.String("movieID", movie.ID), slog.String("title", movie.Title))
	_, err := s.db.ExecContext(ctx, query,
		movie.ID, movie.Title, movie.Duration, nullIfEmpty(movie.Genre),
		movie.ReleaseDate, movie.Rating, nullIfEmpty(movie.State),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &AlreadyExistsError{Title: movie.Title}
		}
		s.logger.ErrorContext(ctx, "failed to insert movie", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}
	return movie, nil
}

func (s *PostgresMovieStore) update(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	query := `UPDATE movies SET titulo = $1, duracion = $2, genero = $3,
              fecha_estreno = $4, clasificacion = $5, estado = $6 WHERE id = $7`

	s.logger.DebugContext(ctx, "updating movie", slog.String("movieID", movie.ID), slog.String("title", movie.Title))
	result, err := s.db.ExecContext(ctx, query,
		movie.Title, movie.Duration, nullIfEmpty(movie.Genre),
		movie.ReleaseDate, movie.Rating, nullIfEmpty(movie.State), movie.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &AlreadyExistsError{Title: movie.Title}
		}
		s.logger.ErrorContext(ctx, "failed to update movie", slog.String("movieID", movie.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

func (s *PostgresMovieStore) Delete(ctx context.Context, movie *domain.Movie) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, movie.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete movie", slog.String("movieID", movie.ID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
