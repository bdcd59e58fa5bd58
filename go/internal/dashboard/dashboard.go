// Package dashboard assembles the composite views the screens render:
// matches with their teams and tournament, players with their team, order
// history with tournament names. Related collections are fetched
// concurrently and the whole batch fails if any fetch fails — screens never
// render partial data.
package dashboard

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

// API is the slice of the dashboard client this layer consumes.
type API interface {
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	ListUserOrders(ctx context.Context, userID string) ([]models.Order, error)
}

// Service resolves entity references through id-indexed maps built from
// full-collection fetches. Fine at demo volumes; pagination would have to
// come first at real scale.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// MatchRow is a match with its references resolved. Dangling references
// (deleted team or tournament) resolve to nil rather than failing the view.
type MatchRow struct {
	Match      models.Match
	Tournament *models.Tournament
	Team1      *models.Team
	Team2      *models.Team
}

// MatchBoard fetches matches, teams and tournaments concurrently and joins
// them by id.
func (s *Service) MatchBoard(ctx context.Context) ([]MatchRow, error) {
	var (
		matches     []models.Match
		teams       []models.Team
		tournaments []models.Tournament
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		matches, err = s.api.ListMatches(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.api.ListTeams(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tournaments, err = s.api.ListTournaments(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	teamIndex := indexTeams(teams)
	tournamentIndex := indexTournaments(tournaments)

	rows := make([]MatchRow, len(matches))
	for i, match := range matches {
		rows[i] = MatchRow{
			Match:      match,
			Tournament: tournamentIndex[match.TournamentID],
			Team1:      teamIndex[match.Team1ID],
			Team2:      teamIndex[match.Team2ID],
		}
	}
	return rows, nil
}

// PlayerRow is a player with their team resolved; Team is nil for free
// agents and dangling references.
type PlayerRow struct {
	Player models.Player
	Team   *models.Team
}

// PlayerRoster fetches players and teams concurrently and joins them by id.
func (s *Service) PlayerRoster(ctx context.Context) ([]PlayerRow, error) {
	var (
		players []models.Player
		teams   []models.Team
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.api.ListPlayers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.api.ListTeams(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	teamIndex := indexTeams(teams)

	rows := make([]PlayerRow, len(players))
	for i, player := range players {
		rows[i] = PlayerRow{
			Player: player,
			Team:   teamIndex[player.TeamID],
		}
	}
	return rows, nil
}

// OrderRow is an order with its tournament resolved.
type OrderRow struct {
	Order      models.Order
	Tournament *models.Tournament
}

// OrderHistory fetches a user's orders and the tournament list concurrently
// and joins them by id.
func (s *Service) OrderHistory(ctx context.Context, userID string) ([]OrderRow, error) {
	var (
		orders      []models.Order
		tournaments []models.Tournament
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.api.ListUserOrders(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		tournaments, err = s.api.ListTournaments(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tournamentIndex := indexTournaments(tournaments)

	rows := make([]OrderRow, len(orders))
	for i, order := range orders {
		rows[i] = OrderRow{
			Order:      order,
			Tournament: tournamentIndex[order.TournamentID],
		}
	}
	return rows, nil
}

func indexTeams(teams []models.Team) map[string]*models.Team {
	index := make(map[string]*models.Team, len(teams))
	for i := range teams {
		index[teams[i].ID] = &teams[i]
	}
	return index
}

func indexTournaments(tournaments []models.Tournament) map[string]*models.Tournament {
	index := make(map[string]*models.Tournament, len(tournaments))
	for i := range tournaments {
		index[tournaments[i].ID] = &tournaments[i]
	}
	return index
}

// matchesQuery does the case-insensitive substring search the list screens
// use. An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// FilterTournaments returns tournaments whose name or location contains the
// query.
func FilterTournaments(tournaments []models.Tournament, query string) []models.Tournament {
	var out []models.Tournament
	for _, t := range tournaments {
		if matchesQuery(query, t.Name, t.Location) {
			out = append(out, t)
		}
	}
	return out
}

// FilterTeams returns teams whose name or region contains the query.
func FilterTeams(teams []models.Team, query string) []models.Team {
	var out []models.Team
	for _, t := range teams {
		if matchesQuery(query, t.Name, t.Region) {
			out = append(out, t)
		}
	}
	return out
}

// FilterPlayers returns players whose name, in-game name or role contains
// the query.
func FilterPlayers(players []models.Player, query string) []models.Player {
	var out []models.Player
	for _, p := range players {
		if matchesQuery(query, p.Name, p.InGameName, p.Role) {
			out = append(out, p)
		}
	}
	return out
}
