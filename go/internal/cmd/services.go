package main

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arenadesk/arenadesk/go/internal/matches"
	"github.com/arenadesk/arenadesk/go/internal/orders"
	"github.com/arenadesk/arenadesk/go/internal/players"
	"github.com/arenadesk/arenadesk/go/internal/rest"
	"github.com/arenadesk/arenadesk/go/internal/teams"
	"github.com/arenadesk/arenadesk/go/internal/tickets"
	"github.com/arenadesk/arenadesk/go/internal/tournaments"
	"github.com/arenadesk/arenadesk/go/internal/users"
)

type Services struct {
	Tournaments *tournaments.Service
	Teams       *teams.Service
	Players     *players.Service
	Matches     *matches.Service
	Orders      *orders.Service
	Tickets     *tickets.Service
	Users       *users.Service

	// RequireAuth gates the routes that need a signed bearer token.
	RequireAuth func(http.Handler) http.Handler
}

// setupServices wires the dependency chain for every entity:
// repository layer -> app layer -> service layer. A nil pool selects the
// in-memory repositories.
func setupServices(pool *pgxpool.Pool, tokens *users.TokenProvider) *Services {
	var (
		tournamentsRepo tournaments.Repository
		teamsRepo       teams.Repository
		playersRepo     players.Repository
		matchesRepo     matches.Repository
		ordersRepo      orders.Repository
		ticketsRepo     tickets.Repository
		usersRepo       users.Repository
	)

	if pool != nil {
		tournamentsRepo = tournaments.NewPostgresRepository(pool)
		teamsRepo = teams.NewPostgresRepository(pool)
		playersRepo = players.NewPostgresRepository(pool)
		matchesRepo = matches.NewPostgresRepository(pool)
		ordersRepo = orders.NewPostgresRepository(pool)
		ticketsRepo = tickets.NewPostgresRepository(pool)
		usersRepo = users.NewPostgresRepository(pool)
	} else {
		tournamentsRepo = tournaments.NewMemoryRepository()
		teamsRepo = teams.NewMemoryRepository()
		playersRepo = players.NewMemoryRepository()
		matchesRepo = matches.NewMemoryRepository()
		ordersRepo = orders.NewMemoryRepository()
		ticketsRepo = tickets.NewMemoryRepository()
		usersRepo = users.NewMemoryRepository()
	}

	return &Services{
		Tournaments: tournaments.NewService(tournaments.NewApp(tournamentsRepo)),
		Teams:       teams.NewService(teams.NewApp(teamsRepo)),
		Players:     players.NewService(players.NewApp(playersRepo)),
		Matches:     matches.NewService(matches.NewApp(matchesRepo)),
		Orders:      orders.NewService(orders.NewApp(ordersRepo)),
		Tickets:     tickets.NewService(tickets.NewApp(ticketsRepo)),
		Users:       users.NewService(users.NewApp(usersRepo, tokens)),
		RequireAuth: rest.RequireAuth(tokens),
	}
}
