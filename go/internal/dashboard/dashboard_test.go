package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenadesk/arenadesk/go/internal/models"
)

type stubAPI struct {
	tournaments []models.Tournament
	teams       []models.Team
	players     []models.Player
	matches     []models.Match
	orders      []models.Order

	teamsErr  error
	ordersErr error
}

func (s *stubAPI) ListTournaments(context.Context) ([]models.Tournament, error) {
	return s.tournaments, nil
}

func (s *stubAPI) ListTeams(context.Context) ([]models.Team, error) {
	return s.teams, s.teamsErr
}

func (s *stubAPI) ListPlayers(context.Context) ([]models.Player, error) {
	return s.players, nil
}

func (s *stubAPI) ListMatches(context.Context) ([]models.Match, error) {
	return s.matches, nil
}

func (s *stubAPI) ListUserOrders(context.Context, string) ([]models.Order, error) {
	return s.orders, s.ordersErr
}

func TestMatchBoardJoinsReferences(t *testing.T) {
	api := &stubAPI{
		tournaments: []models.Tournament{{ID: "t1", Name: "Summer Invitational"}},
		teams: []models.Team{
			{ID: "team-1", Name: "Night Owls"},
			{ID: "team-2", Name: "River Foxes"},
		},
		matches: []models.Match{
			{ID: "m1", TournamentID: "t1", Team1ID: "team-1", Team2ID: "team-2"},
			{ID: "m2", TournamentID: "t1", Team1ID: "team-1", Team2ID: "team-gone"},
		},
	}

	rows, err := NewService(api).MatchBoard(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "Summer Invitational", rows[0].Tournament.Name)
	require.Equal(t, "Night Owls", rows[0].Team1.Name)
	require.Equal(t, "River Foxes", rows[0].Team2.Name)

	// Dangling reference resolves to nil, the row still renders.
	require.Nil(t, rows[1].Team2)
	require.NotNil(t, rows[1].Team1)
}

func TestMatchBoardFailsWhenAnyFetchFails(t *testing.T) {
	api := &stubAPI{
		tournaments: []models.Tournament{{ID: "t1"}},
		matches:     []models.Match{{ID: "m1"}},
		teamsErr:    errors.New("boom"),
	}

	rows, err := NewService(api).MatchBoard(context.Background())
	require.Error(t, err)
	require.Nil(t, rows)
}

func TestPlayerRosterResolvesTeams(t *testing.T) {
	api := &stubAPI{
		teams: []models.Team{{ID: "team-1", Name: "Night Owls"}},
		players: []models.Player{
			{ID: "p1", Name: "Jane Doe", TeamID: "team-1"},
			{ID: "p2", Name: "Free Agent", TeamID: ""},
		},
	}

	rows, err := NewService(api).PlayerRoster(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Night Owls", rows[0].Team.Name)
	require.Nil(t, rows[1].Team)
}

func TestOrderHistoryResolvesTournaments(t *testing.T) {
	api := &stubAPI{
		tournaments: []models.Tournament{{ID: "t1", Name: "Summer Invitational"}},
		orders: []models.Order{
			{ID: "o1", UserID: "u1", TournamentID: "t1", Quantity: 2},
		},
	}

	rows, err := NewService(api).OrderHistory(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Summer Invitational", rows[0].Tournament.Name)
}

func TestOrderHistoryFailsWhenOrdersFetchFails(t *testing.T) {
	api := &stubAPI{ordersErr: errors.New("boom")}
	rows, err := NewService(api).OrderHistory(context.Background(), "u1")
	require.Error(t, err)
	require.Nil(t, rows)
}

func TestFilterTournaments(t *testing.T) {
	tournaments := []models.Tournament{
		{ID: "t1", Name: "Summer Invitational", Location: "Berlin"},
		{ID: "t2", Name: "Winter Clash", Location: "Seoul"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query matches all", query: "", wantIDs: []string{"t1", "t2"}},
		{name: "matches name case-insensitively", query: "SUMMER", wantIDs: []string{"t1"}},
		{name: "matches location", query: "seoul", wantIDs: []string{"t2"}},
		{name: "surrounding whitespace ignored", query: "  clash  ", wantIDs: []string{"t2"}},
		{name: "no match", query: "lunar", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTournaments(tournaments, tt.query)
			ids := make([]string, 0, len(got))
			for _, tournament := range got {
				ids = append(ids, tournament.ID)
			}
			if tt.wantIDs == nil {
				require.Empty(t, ids)
				return
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterPlayersSearchesAllFields(t *testing.T) {
	players := []models.Player{
		{ID: "p1", Name: "Jane Doe", InGameName: "Shadowfax", Role: "Mid"},
		{ID: "p2", Name: "Sam Lee", InGameName: "Bulwark", Role: "Support"},
	}

	require.Len(t, FilterPlayers(players, "shadow"), 1)
	require.Len(t, FilterPlayers(players, "support"), 1)
	require.Len(t, FilterPlayers(players, "lee"), 1)
	require.Len(t, FilterPlayers(players, ""), 2)
}
