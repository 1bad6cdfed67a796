package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(handler *MovieHandler) *mux.Router {
	router := mux.NewRouter()

	apiRouter := router.PathPrefix("/api").Subrouter()

	moviesRouter := apiRouter.PathPrefix("/movies").Subrouter()
	moviesRouter.HandleFunc("", handler.GetMovies).Methods(http.MethodGet)
	moviesRouter.HandleFunc("", handler.CreateMovie).Methods(http.MethodPost)
	moviesRouter.HandleFunc("/suggest", handler.SuggestMovies).Methods(http.MethodPost)
	moviesRouter.HandleFunc("/{movieId}", handler.GetMovieByID).Methods(http.MethodGet)
	moviesRouter.HandleFunc("/{movieId}", handler.UpdateMovie).Methods(http.MethodPut)
	moviesRouter.HandleFunc("/{movieId}", handler.DeleteMovie).Methods(http.MethodDelete)

	return router
}
