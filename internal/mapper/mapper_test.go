package mapper

import (
	"testing"
	"time"

	"github.com/Camiloaranda07/Springboot-platzi/internal/domain"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func boolPtr(v bool) *bool          { return &v }
func datePtr(d domain.Date) *domain.Date { return &d }
func genrePtr(g domain.Genre) *domain.Genre { return &g }

func matrixRecord() *domain.Movie {
	return &domain.Movie{
		ID:          "some-id",
		Title:       "The Matrix",
		Duration:    intPtr(120),
		Genre:       "CIENCIA_FICCION",
		ReleaseDate: datePtr(domain.NewDate(1999, time.March, 31)),
		Rating:      floatPtr(4.8),
		State:       domain.StateAvailable,
	}
}

func TestToDetails(t *testing.T) {
	details := ToDetails(matrixRecord())

	if details.Title != "The Matrix" {
		t.Errorf("title = %q", details.Title)
	}
	if details.Duration == nil || *details.Duration != 120 {
		t.Errorf("duration = %v, want 120", details.Duration)
	}
	if details.Genre == nil || *details.Genre != domain.GenreSciFi {
		t.Errorf("genre = %v, want SCI_FI", details.Genre)
	}
	if details.ReleaseDate == nil || details.ReleaseDate.String() != "1999-03-31" {
		t.Errorf("releaseDate = %v, want 1999-03-31", details.ReleaseDate)
	}
	if details.Rating == nil || *details.Rating != 4.8 {
		t.Errorf("rating = %v, want 4.8", details.Rating)
	}
	if details.Available == nil || !*details.Available {
		t.Errorf("available = %v, want true", details.Available)
	}
}

func TestToDetailsPropagatesAbsence(t *testing.T) {
	m := matrixRecord()
	m.Genre = "INVALID_GENRE"
	m.ReleaseDate = nil
	m.Rating = nil
	m.State = "X"

	details := ToDetails(m)

	if details.Genre != nil {
		t.Errorf("genre = %v, want nil for unrecognized code", *details.Genre)
	}
	if details.ReleaseDate != nil {
		t.Errorf("releaseDate = %v, want nil", details.ReleaseDate)
	}
	if details.Rating != nil {
		t.Errorf("rating = %v, want nil", *details.Rating)
	}
	if details.Available != nil {
		t.Errorf("available = %v, want nil for unrecognized state", *details.Available)
	}
}

func TestToRecordDiscardsAvailability(t *testing.T) {
	details := domain.MovieDetails{
		Title:       "The Matrix",
		Duration:    intPtr(120),
		Genre:       genrePtr(domain.GenreSciFi),
		ReleaseDate: datePtr(domain.NewDate(1999, time.March, 31)),
		Rating:      floatPtr(4.8),
		Available:   boolPtr(false),
	}

	m := ToRecord(details)

	if m.State != "" {
		t.Errorf("state = %q, want empty: the caller decides the state", m.State)
	}
	if m.Genre != "CIENCIA_FICCION" {
		t.Errorf("genre = %q, want CIENCIA_FICCION", m.Genre)
	}
	if m.Title != "The Matrix" || *m.Duration != 120 || *m.Rating != 4.8 {
		t.Errorf("record fields not copied verbatim: %+v", m)
	}
}

func TestApplyUpdateMutatesOnlyMutableFields(t *testing.T) {
	m := matrixRecord()
	update := domain.UpdateMovie{
		Title:       "The Matrix Reloaded",
		ReleaseDate: datePtr(domain.NewDate(2003, time.May, 15)),
		Rating:      floatPtr(4.7),
	}

	ApplyUpdate(update, m)

	if m.Title != "The Matrix Reloaded" {
		t.Errorf("title = %q", m.Title)
	}
	if m.ReleaseDate.String() != "2003-05-15" {
		t.Errorf("releaseDate = %s", m.ReleaseDate)
	}
	if *m.Rating != 4.7 {
		t.Errorf("rating = %v", *m.Rating)
	}
	if *m.Duration != 120 || m.Genre != "CIENCIA_FICCION" || m.State != domain.StateAvailable {
		t.Errorf("immutable fields changed: %+v", m)
	}
}

func TestApplyUpdateClearsAbsentFields(t *testing.T) {
	m := matrixRecord()

	ApplyUpdate(domain.UpdateMovie{Title: "New Title"}, m)

	if m.Title != "New Title" {
		t.Errorf("title = %q", m.Title)
	}
	if m.ReleaseDate != nil {
		t.Errorf("releaseDate = %v, want cleared", m.ReleaseDate)
	}
	if m.Rating != nil {
		t.Errorf("rating = %v, want cleared", *m.Rating)
	}
}

func TestToDetailsListPreservesOrder(t *testing.T) {
	first := matrixRecord()
	second := matrixRecord()
	second.Title = "Inception"

	details := ToDetailsList([]*domain.Movie{first, second})

	if len(details) != 2 {
		t.Fatalf("len = %d, want 2", len(details))
	}
	if details[0].Title != "The Matrix" || details[1].Title != "Inception" {
		t.Errorf("order not preserved: %q, %q", details[0].Title, details[1].Title)
	}
}

func TestToDetailsListEmpty(t *testing.T) {
	if details := ToDetailsList(nil); details == nil || len(details) != 0 {
		t.Errorf("want empty non-nil list, got %v", details)
	}
}
