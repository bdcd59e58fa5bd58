package dashapi

const (
	// DefaultBaseURL is where the dashboard API listens in development.
	DefaultBaseURL = "http://localhost:9999/api"

	// API endpoints. One plural segment per entity; the historical
	// /team, /player, /score-match spellings are gone.
	TournamentsEndpoint = "/tournaments"
	TeamsEndpoint       = "/teams"
	PlayersEndpoint     = "/players"
	MatchesEndpoint     = "/matches"
	OrdersEndpoint      = "/orders"
	TicketsEndpoint     = "/tickets"
	UsersEndpoint       = "/users"
	LoginEndpoint       = "/login"
	RegisterEndpoint    = "/register"

	// Headers
	ContentTypeHeader   = "Content-Type"
	AuthorizationHeader = "Authorization"
	ContentTypeJSON     = "application/json"
)
