package matches

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

func TestCreateMatchAssignsID(t *testing.T) {
	app := NewApp(NewMemoryRepository())

	created, err := app.CreateMatch(context.Background(), models.Match{
		TournamentID: "t1",
		Team1ID:      "team-1",
		Team2ID:      "team-2",
		Date:         "2026-09-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := app.GetMatch(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestCreateMatchRejectsSameTeamTwice(t *testing.T) {
	app := NewApp(NewMemoryRepository())

	_, err := app.CreateMatch(context.Background(), models.Match{
		TournamentID: "t1",
		Team1ID:      "team-1",
		Team2ID:      "team-1",
	})
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestCreateMatchRejectsNegativeScores(t *testing.T) {
	app := NewApp(NewMemoryRepository())

	_, err := app.CreateMatch(context.Background(), models.Match{
		TournamentID: "t1",
		Team1ID:      "team-1",
		Team2ID:      "team-2",
		Team1Score:   -1,
	})
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestUpdateMatchMissingID(t *testing.T) {
	app := NewApp(NewMemoryRepository())

	_, err := app.UpdateMatch(context.Background(), "missing", models.Match{
		TournamentID: "t1",
		Team1ID:      "team-1",
		Team2ID:      "team-2",
	})
	require.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestDeleteMatchTwiceReportsNotFound(t *testing.T) {
	app := NewApp(NewMemoryRepository())

	created, err := app.CreateMatch(context.Background(), models.Match{
		TournamentID: "t1",
		Team1ID:      "team-1",
		Team2ID:      "team-2",
	})
	require.NoError(t, err)

	require.NoError(t, app.DeleteMatch(context.Background(), created.ID))
	err = app.DeleteMatch(context.Background(), created.ID)
	require.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestCreateMatchDuplicateIDRejected(t *testing.T) {
	app := NewApp(NewMemoryRepository())
	match := models.Match{
		ID:           "m1",
		TournamentID: "t1",
		Team1ID:      "team-1",
		Team2ID:      "team-2",
	}

	_, err := app.CreateMatch(context.Background(), match)
	require.NoError(t, err)

	_, err = app.CreateMatch(context.Background(), match)
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
}
