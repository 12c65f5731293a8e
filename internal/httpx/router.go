package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", handler.Health)
	r.Get("/pay", handler.Pay)
	r.Get("/mono/return", handler.Return)
	r.Post("/mono/webhook", handler.Webhook)
	return r
}
