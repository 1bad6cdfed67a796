package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Camiloaranda07/Springboot-platzi/internal/domain"
)

// ErrMovieNotFound is returned when a lookup by id matches no record.
var ErrMovieNotFound = errors.New("movie not found")

// AlreadyExistsError reports a title-uniqueness violation. The conflicting
// title is carried so the API surface can include it in the response.
type AlreadyExistsError struct {
	Title string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("movie %q already exists", e.Title)
}

// MovieStore is the keyed persistence contract the catalog depends on.
// Save is insert-or-update: a record with an empty ID is inserted and gets
// its ID assigned; a record with an ID replaces the stored row or fails
// with ErrMovieNotFound. FindFirstByTitle returns (nil, nil) when no record
// carries the title.
type MovieStore interface {
	FindAll(ctx context.Context) ([]*domain.Movie, error)
	FindAllByState(ctx context.Context, state string) ([]*domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	FindFirstByTitle(ctx context.Context, title string) (*domain.Movie, error)
	Save(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Delete(ctx context.Context, movie *domain.Movie) error
}
