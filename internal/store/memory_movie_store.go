package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Camiloaranda07/Springboot-platzi/internal/domain"
)

// MemoryMovieStore keeps records in a mutex-guarded map. It backs the
// service when no database is configured and doubles as the test store.
// All reads and writes go through copies so callers never alias the
// stored records.
type MemoryMovieStore struct {
	mu     sync.RWMutex
	movies map[string]*domain.Movie
}

func NewMemoryMovieStore() *MemoryMovieStore {
	return &MemoryMovieStore{movies: make(map[string]*domain.Movie)}
}

func (s *MemoryMovieStore) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		out = append(out, cloneMovie(m))
	}
	sortByTitle(out)
	return out, nil
}

func (s *MemoryMovieStore) FindAllByState(ctx context.Context, state string) ([]*domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if m.State == state {
			out = append(out, cloneMovie(m))
		}
	}
	sortByTitle(out)
	return out, nil
}

func (s *MemoryMovieStore) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movies[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	return cloneMovie(m), nil
}

func (s *MemoryMovieStore) FindFirstByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.movies {
		if m.Title == title {
			return cloneMovie(m), nil
		}
	}
	return nil, nil
}

func (s *MemoryMovieStore) Save(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if movie.ID == "" {
		movie.ID = uuid.NewString()
	} else if _, ok := s.movies[movie.ID]; !ok {
		return nil, ErrMovieNotFound
	}
	s.movies[movie.ID] = cloneMovie(movie)
	return cloneMovie(movie), nil
}

func (s *MemoryMovieStore) Delete(ctx context.Context, movie *domain.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movies[movie.ID]; !ok {
		return ErrMovieNotFound
	}
	delete(s.movies, movie.ID)
	return nil
}

func cloneMovie(m *domain.Movie) *domain.Movie {
	c := *m
	if m.Duration != nil {
		v := *m.Duration
		c.Duration = &v
	}
	if m.ReleaseDate != nil {
		v := *m.ReleaseDate
		c.ReleaseDate = &v
	}
	if m.Rating != nil {
		v := *m.Rating
		c.Rating = &v
	}
	return &c
}

func sortByTitle(movies []*domain.Movie) {
	sort.Slice(movies, func(i, j int) bool { return movies[i].Title < movies[j].Title })
}
