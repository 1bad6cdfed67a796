package domain

// Genre is the symbolic genre value exposed to API clients. The stored
// representation uses a different set of codes, see codec.go.
type Genre string

const (
	GenreAction   Genre = "ACTION"
	GenreComedy   Genre = "COMEDY"
	GenreDrama    Genre = "DRAMA"
	GenreAnimated Genre = "ANIMATED"
	GenreHorror   Genre = "HORROR"
	GenreSciFi    Genre = "SCI_FI"
)

// Lifecycle state codes as stored. "D" marks a movie as available in the
// catalog, "N" hides it from the public list.
const (
	StateAvailable    = "D"
	StateNotAvailable = "N"
)

// Movie is the stored representation of a catalog entry. The ID is assigned
// by the store on first save and never changes. Duration, release date and
// rating are nullable columns; Genre and State hold raw storage codes and
// may be empty when the row was written by an external tool.
type Movie struct {
	ID          string   `db:"id"`
	Title       string   `db:"titulo"`
	Duration    *int     `db:"duracion"`
	Genre       string   `db:"genero"`
	ReleaseDate *Date    `db:"fecha_estreno"`
	Rating      *float64 `db:"clasificacion"`
	State       string   `db:"estado"`
}

// MovieDetails is the external representation of a movie, used both as the
// create request body and as every response body. It carries no identifier.
// Genre and Available are nil when the stored codes are unrecognized.
type MovieDetails struct {
	Title       string   `json:"title" validate:"required,min=1,max=150"`
	Duration    *int     `json:"duration" validate:"required,gt=0"`
	Genre       *Genre   `json:"genre" validate:"required,oneof=ACTION COMEDY DRAMA ANIMATED HORROR SCI_FI"`
	ReleaseDate *Date    `json:"releaseDate" validate:"required"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Available   *bool    `json:"available"`
}

// UpdateMovie is the partial representation accepted by the update endpoint.
// Only title, release date and rating are mutable after creation; duration,
// genre and state are fixed. A nil release date or rating clears the stored
// value rather than leaving it untouched.
type UpdateMovie struct {
	Title       string   `json:"title" validate:"required,min=1,max=150"`
	ReleaseDate *Date    `json:"releaseDate"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// SuggestRequest is the body of the AI suggestion endpoint.
type SuggestRequest struct {
	UserPreferences string `json:"userPreferences" validate:"required"`
}
