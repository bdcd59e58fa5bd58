package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(config *Config, services *Services) *http.Server {
	router := chi.NewRouter()
	router.Use(requestLogger)

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: config.allowedOrigins(),
		AllowedHeaders: []string{"*"},
	})

	router.Route("/api", func(r chi.Router) {
		services.Tournaments.Routes(r)
		services.Teams.Routes(r)
		services.Players.Routes(r)
		services.Matches.Routes(r)
		services.Tickets.Routes(r)
		services.Users.Routes(r)

		// Orders carry purchase history, so they require a valid token.
		r.Group(func(r chi.Router) {
			r.Use(services.RequireAuth)
			services.Orders.Routes(r)
		})
	})

	setupHealthCheck(router)

	handler := c.Handler(router)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", config.port()),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func setupHealthCheck(router chi.Router) {
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
