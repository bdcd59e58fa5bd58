package dashapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestGetTournamentRoundTrip(t *testing.T) {
	want := models.Tournament{
		ID:        "t1",
		Name:      "Summer Invitational",
		Location:  "Berlin",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-05",
		Teams:     []string{"team-1", "team-2"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/tournaments/t1", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.GetTournament(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, want, *got)
}

func TestCreateTeamSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/teams", r.URL.Path)
		require.Equal(t, ContentTypeJSON, r.Header.Get(ContentTypeHeader))

		var team models.Team
		require.NoError(t, json.NewDecoder(r.Body).Decode(&team))
		require.Equal(t, "Night Owls", team.Name)

		team.ID = "team-9"
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(team))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	created, err := client.CreateTeam(context.Background(), models.Team{Name: "Night Owls", Region: "EU"})
	require.NoError(t, err)
	require.Equal(t, "team-9", created.ID)
}

func TestErrorKindsFromStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   apierror.Kind
	}{
		{name: "missing resource", status: http.StatusNotFound, want: apierror.KindNotFound},
		{name: "rejected token", status: http.StatusUnauthorized, want: apierror.KindUnauthorized},
		{name: "bad payload", status: http.StatusBadRequest, want: apierror.KindValidation},
		{name: "server fault", status: http.StatusInternalServerError, want: apierror.KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.GetPlayer(context.Background(), "p1")
			require.Error(t, err)
			require.Equal(t, tt.want, apierror.KindOf(err))
			require.Contains(t, err.Error(), "failed to fetch player with id p1")
		})
	}
}

func TestNetworkFailureKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	_, err := client.ListMatches(context.Background())
	require.True(t, apierror.IsKind(err, apierror.KindNetwork))
}

func TestEmptyIDRejectedWithoutRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetOrder(context.Background(), "")
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
	require.False(t, called)
}

func TestBearerTokenAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer session-token", r.Header.Get(AuthorizationHeader))
		require.NoError(t, json.NewEncoder(w).Encode([]models.Order{}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetTokenSource(staticToken("session-token"))
	_, err := client.ListOrders(context.Background())
	require.NoError(t, err)
}

func TestLoginPreservesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		require.NoError(t, json.NewEncoder(w).Encode(map[string]string{
			"message": "invalid username or password",
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "nope"})
	require.True(t, apierror.IsKind(err, apierror.KindUnauthorized))
	require.Contains(t, err.Error(), "invalid username or password")
}

func TestLoginFallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), Credentials{Username: "alice", Password: "pw"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "login failed")
}

func TestDeleteTournament(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/tournaments/t1", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(map[string]string{"status": "deleted"}))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.DeleteTournament(context.Background(), "t1"))
}

func TestConcurrentBatchSharesOneClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer session-token", r.Header.Get(AuthorizationHeader))
		switch {
		case r.Method == http.MethodPost:
			var team models.Team
			require.NoError(t, json.NewDecoder(r.Body).Decode(&team))
			require.NoError(t, json.NewEncoder(w).Encode(team))
		default:
			_, err := w.Write([]byte("[]"))
			require.NoError(t, err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetTokenSource(staticToken("session-token"))

	// Mirrors the composite-view fan-out: many goroutines sharing one
	// client, mixing reads with writes that set the content type.
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			_, err := client.ListMatches(ctx)
			return err
		})
		g.Go(func() error {
			_, err := client.ListTeams(ctx)
			return err
		})
		g.Go(func() error {
			_, err := client.CreateTeam(ctx, models.Team{Name: "Night Owls"})
			return err
		})
	}
	require.NoError(t, g.Wait())
}

func TestCreateMatchRejectedClientSideWithoutTeams(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL)

	// Empty team ids are equal, so the two-different-teams rule applies
	// before any request goes out.
	_, err := client.CreateMatch(context.Background(), models.Match{TournamentID: "t1"})
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
	require.False(t, called)
}
