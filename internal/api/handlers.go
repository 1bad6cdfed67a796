package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/Camiloaranda07/Springboot-platzi/internal/catalog"
	"github.com/Camiloaranda07/Springboot-platzi/internal/clients"
	"github.com/Camiloaranda07/Springboot-platzi/internal/domain"
	"github.com/Camiloaranda07/Springboot-platzi/internal/store"
)

// MovieHandler holds the dependencies of the HTTP handlers. Request bodies
// are validated here, before the catalog service is invoked; the catalog
// assumes well-formed input.
type MovieHandler struct {
	catalog   *catalog.Service
	suggester clients.Suggester
	logger    *slog.Logger
	validator *validator.Validate
}

func NewMovieHandler(c *catalog.Service, s clients.Suggester, l *slog.Logger, v *validator.Validate) *MovieHandler {
	return &MovieHandler{
		catalog:   c,
		suggester: s,
		logger:    l,
		validator: v,
	}
}

// errorResponse is the body of every error reply. Code is a stable kind tag
// clients can dispatch on without parsing the message.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *MovieHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			h.logger.ErrorContext(r.Context(), "failed to encode JSON response",
				slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		}
	}
}

func (h *MovieHandler) respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	h.respondJSON(w, r, status, errorResponse{Code: code, Message: message})
}

// respondCatalogError maps the catalog error taxonomy onto HTTP statuses:
// not-found -> 404, already-exists -> 400, anything else -> 500 with the
// message passed through.
func (h *MovieHandler) respondCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	var exists *store.AlreadyExistsError
	switch {
	case errors.Is(err, store.ErrMovieNotFound):
		h.respondError(w, r, http.StatusNotFound, "movie-not-found", "movie not found")
	case errors.As(err, &exists):
		h.respondError(w, r, http.StatusBadRequest, "movie-already-exists",
			fmt.Sprintf("movie %q already exists", exists.Title))
	default:
		h.logger.ErrorContext(r.Context(), "unexpected catalog error", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "unknown-error", err.Error())
	}
}

func (h *MovieHandler) respondValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		h.respondError(w, r, http.StatusBadRequest, "validation-failed", err.Error())
		return
	}
	out := make([]errorResponse, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, errorResponse{
			Code:    fe.Field(),
			Message: fmt.Sprintf("failed validation on rule %q", fe.Tag()),
		})
	}
	h.respondJSON(w, r, http.StatusBadRequest, out)
}

// GetMovies returns every available movie. Not-available records are
// excluded here and only here.
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	movies, err := h.catalog.ListAvailable(ctx)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, movies)
}

func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movieID := mux.Vars(r)["movieId"]

	movie, err := h.catalog.GetByID(ctx, movieID)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, movie)
}

func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var details domain.MovieDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "invalid-payload", "invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.validator.StructCtx(ctx, details); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	created, err := h.catalog.Create(ctx, details)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusCreated, created)
}

func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movieID := mux.Vars(r)["movieId"]

	var update domain.UpdateMovie
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "invalid-payload", "invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.validator.StructCtx(ctx, update); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	updated, err := h.catalog.Update(ctx, movieID, update)
	if err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, updated)
}

func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movieID := mux.Vars(r)["movieId"]

	if err := h.catalog.Delete(ctx, movieID); err != nil {
		h.respondCatalogError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, nil)
}

// SuggestMovies delegates to the AI collaborator and returns its free-text
// answer verbatim.
func (h *MovieHandler) SuggestMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "invalid-payload", "invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.validator.StructCtx(ctx, req); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	suggestion, err := h.suggester.Suggest(ctx, req.UserPreferences)
	if err != nil {
		h.logger.ErrorContext(ctx, "suggestion request failed", slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, "unknown-error", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(suggestion)); err != nil {
		h.logger.ErrorContext(ctx, "failed to write suggestion response", slog.String("error", err.Error()))
	}
}
