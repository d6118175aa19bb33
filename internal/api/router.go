package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/OleksandrRym/RegularPaymentsSystem/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.HandleFunc("/health", h.HealthHandler)
	mux.HandleFunc("/swagger/*", httpSwagger.Handler())

	mux.Route("/regular-payments", func(r chi.Router) {
		r.Use(mw.APIKeyAuth)
		r.Get("/", h.RegularPayments)
		r.Post("/", h.CreateRegularPayment)
		r.Get("/{id}", h.RegularPayment)
		r.Put("/{id}", h.UpdateRegularPayment)
		r.Delete("/{id}", h.DeleteRegularPayment)
	})

	mux.Route("/entrie-payments", func(r chi.Router) {
		r.Use(mw.APIKeyAuth)
		r.Get("/", h.EntriesByRegularPayment)
		r.Post("/", h.CreateEntry)
		r.Get("/check", h.CheckWriteOff)
		r.Get("/{id}", h.Entry)
		r.Put("/{id}", h.UpdateEntry)
		r.Patch("/{id}", h.UpdateEntryStatus)
		r.Delete("/{id}", h.DeleteEntry)
	})

	return mux
}

func NewReglamentRouter(h *ReglamentHandler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.HandleFunc("/health", Health)

	mux.Route("/reglament", func(r chi.Router) {
		r.Use(mw.APIKeyAuth)
		r.Post("/run", h.Run)
	})

	return mux
}
