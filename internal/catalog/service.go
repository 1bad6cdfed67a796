// Package catalog implements the business rules of the movie catalog:
// title uniqueness on create and update, the availability filter on the
// public list, and hard deletion. Storage is delegated to a MovieStore.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Camiloaranda07/Springboot-platzi/internal/domain"
	"github.com/Camiloaranda07/Springboot-platzi/internal/mapper"
	"github.com/Camiloaranda07/Springboot-platzi/internal/store"
)

type Service struct {
	store  store.MovieStore
	logger *slog.Logger
}

func NewService(s store.MovieStore, logger *slog.Logger) *Service {
	return &Service{store: s, logger: logger}
}

// ListAvailable returns the views of every record whose state is available.
// An empty store yields an empty list.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.MovieDetails, error) {
	movies, err := s.store.FindAllByState(ctx, domain.StateAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to list available movies: %w", err)
	}
	return mapper.ToDetailsList(movies), nil
}

// GetByID returns the view of a single record. The availability filter is
// deliberately not applied here: a not-available record is still readable
// by id, only the public list hides it.
func (s *Service) GetByID(ctx context.Context, id string) (domain.MovieDetails, error) {
	movie, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.MovieDetails{}, err
	}
	return mapper.ToDetails(movie), nil
}

// Create persists a new record. The title must be unique across all records
// whatever their state, and the stored state is always forced to available
// regardless of what the client sent.
func (s *Service) Create(ctx context.Context, details domain.MovieDetails) (domain.MovieDetails, error) {
	existing, err := s.store.FindFirstByTitle(ctx, details.Title)
	if err != nil {
		return domain.MovieDetails{}, fmt.Errorf("failed to check title uniqueness: %w", err)
	}
	if existing != nil {
		s.logger.WarnContext(ctx, "movie title already taken", slog.String("title", details.Title))
		return domain.MovieDetails{}, &store.AlreadyExistsError{Title: details.Title}
	}

	movie := mapper.ToRecord(details)
	movie.State = domain.StateAvailable

	saved, err := s.store.Save(ctx, movie)
	if err != nil {
		return domain.MovieDetails{}, err
	}
	s.logger.InfoContext(ctx, "movie created", slog.String("movieID", saved.ID), slog.String("title", saved.Title))
	return mapper.ToDetails(saved), nil
}

// Update applies a patch to an existing record. The uniqueness check only
// runs when the patch changes the title, so re-submitting the current title
// never collides with the record itself.
func (s *Service) Update(ctx context.Context, id string, update domain.UpdateMovie) (domain.MovieDetails, error) {
	movie, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.MovieDetails{}, err
	}

	if movie.Title != update.Title {
		existing, err := s.store.FindFirstByTitle(ctx, update.Title)
		if err != nil {
			return domain.MovieDetails{}, fmt.Errorf("failed to check title uniqueness: %w", err)
		}
		if existing != nil {
			s.logger.WarnContext(ctx, "movie title already taken", slog.String("title", update.Title))
			return domain.MovieDetails{}, &store.AlreadyExistsError{Title: update.Title}
		}
	}

	mapper.ApplyUpdate(update, movie)

	saved, err := s.store.Save(ctx, movie)
	if err != nil {
		return domain.MovieDetails{}, err
	}
	s.logger.InfoContext(ctx, "movie updated", slog.String("movieID", saved.ID), slog.String("title", saved.Title))
	return mapper.ToDetails(saved), nil
}

// Delete removes a record permanently. There is no soft-delete: the row is
// gone and its title becomes free for reuse.
func (s *Service) Delete(ctx context.Context, id string) error {
	movie, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, movie); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "movie deleted", slog.String("movieID", id))
	return nil
}
