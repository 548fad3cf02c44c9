package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/memgame/memory-backend/internal/store"
	"github.com/memgame/memory-backend/internal/ws"
)

// SetupRoutes wires the request handlers and the live-update stream around
// the store. Browser clients send credential cookies cross-origin, so CORS
// runs with credentials enabled.
func SetupRoutes(st *store.Store, log *zap.Logger, allowedOrigins []string) http.Handler {
	a := &api{store: st, log: log}

	r := chi.NewRouter()
	r.Get("/ping", a.Ping)
	r.Get("/key", a.CheckKey)
	r.Post("/create", a.Create)
	r.Post("/delete", a.Delete)
	r.Post("/join", a.Join)
	r.Post("/ready", a.Ready)
	r.Post("/pick_card", a.Pick)
	r.Get("/game", ws.Handler(st, log, allowedOrigins))
	r.Get("/healthz", Healthz)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}
