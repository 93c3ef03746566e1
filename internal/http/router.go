package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *Handler) nethttp.Handler {
	r := chi.NewRouter()

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/football-team", func(rt chi.Router) {
		rt.Post("/", handler.AddTeam)
		rt.Get("/", handler.ListTeams)
		rt.Get("/{teamName}", handler.TeamByName)
	})

	return r
}
