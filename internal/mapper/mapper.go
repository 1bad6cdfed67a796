// Package mapper translates between the stored movie representation and the
// external request/response shapes. It owns the field-presence rules: absent
// stored values stay absent in the view, and absent patch values clear the
// stored value on update.
package mapper

import (
	"github.com/Camiloaranda07/Springboot-platzi/internal/domain"
)

// ToDetails builds the external view of a stored movie. An unrecognized
// genre or state code produces a nil field, never an error.
func ToDetails(m *domain.Movie) domain.MovieDetails {
	return domain.MovieDetails{
		Title:       m.Title,
		Duration:    m.Duration,
		Genre:       domain.GenreFromCode(m.Genre),
		ReleaseDate: m.ReleaseDate,
		Rating:      m.Rating,
		Available:   domain.StateFlag(m.State),
	}
}

// ToRecord builds a stored record from an inbound view. The availability
// flag the client may have sent is discarded: the record's State is left
// empty and the catalog service decides it.
func ToRecord(d domain.MovieDetails) *domain.Movie {
	m := &domain.Movie{
		Title:       d.Title,
		Duration:    d.Duration,
		ReleaseDate: d.ReleaseDate,
		Rating:      d.Rating,
	}
	if d.Genre != nil {
		m.Genre = domain.GenreCode(*d.Genre)
	}
	return m
}

// ApplyUpdate mutates the mutable fields of a record in place. Release date
// and rating follow the patch exactly, so a patch that omits them clears
// them. Duration, genre and state are untouched.
func ApplyUpdate(u domain.UpdateMovie, m *domain.Movie) {
	m.Title = u.Title
	m.ReleaseDate = u.ReleaseDate
	m.Rating = u.Rating
}

// ToDetailsList maps records element-wise, preserving input order.
func ToDetailsList(movies []*domain.Movie) []domain.MovieDetails {
	details := make([]domain.MovieDetails, 0, len(movies))
	for _, m := range movies {
		details = append(details, ToDetails(m))
	}
	return details
}
