package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/arenadesk/arenadesk/go/clients/dashapi"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// Seeds a running dashboard API with demo data over REST. Point it at a
// server with BASE_URL (defaults to the local dev address).

const (
	teamCount       = 8
	playersPerTeam  = 5
	tournamentCount = 3
	matchesPerTour  = 4
)

var roles = []string{"Top", "Jungle", "Mid", "ADC", "Support"}

var regions = []string{"NA", "EU", "KR", "CN", "BR", "OCE"}

func main() {
	ctx := context.Background()
	faker := gofakeit.New(0)

	client := dashapi.NewClient(getBaseURL())

	if _, err := client.Register(ctx, dashapi.Registration{
		Username: "demo_user",
		Email:    "demo@example.com",
		Password: "demo-password",
	}); err != nil {
		fail("register demo user", err)
	}

	teams := make([]models.Team, 0, teamCount)
	for i := 0; i < teamCount; i++ {
		team, err := client.CreateTeam(ctx, models.Team{
			Name:   faker.NounCollectiveAnimal() + " " + faker.PetName(),
			Region: regions[faker.IntRange(0, len(regions)-1)],
			Logo:   faker.ImageURL(128, 128),
		})
		if err != nil {
			fail("create team", err)
		}
		teams = append(teams, *team)
	}

	for _, team := range teams {
		for i := 0; i < playersPerTeam; i++ {
			if _, err := client.CreatePlayer(ctx, models.Player{
				Name:       faker.Name(),
				InGameName: faker.Gamertag(),
				Role:       roles[i%len(roles)],
				TeamID:     team.ID,
			}); err != nil {
				fail("create player", err)
			}
		}
	}

	for i := 0; i < tournamentCount; i++ {
		now := time.Now()
		start := faker.DateRange(now.AddDate(0, 0, 1), now.AddDate(0, 2, 0))
		end := start.AddDate(0, 0, faker.IntRange(2, 10))

		teamIDs := make([]string, 0, 4)
		for _, t := range pickTeams(faker, teams, 4) {
			teamIDs = append(teamIDs, t.ID)
		}

		tournament, err := client.CreateTournament(ctx, models.Tournament{
			Name:      faker.City() + " " + faker.HackerNoun() + " Cup",
			Location:  faker.City(),
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
			Teams:     teamIDs,
		})
		if err != nil {
			fail("create tournament", err)
		}

		for j := 0; j < matchesPerTour; j++ {
			pair := pickTeams(faker, teams, 2)
			if _, err := client.CreateMatch(ctx, models.Match{
				TournamentID: tournament.ID,
				Team1ID:      pair[0].ID,
				Team2ID:      pair[1].ID,
				Team1Score:   faker.IntRange(0, 3),
				Team2Score:   faker.IntRange(0, 3),
				Date:         start.AddDate(0, 0, j).Format("2006-01-02"),
			}); err != nil {
				fail("create match", err)
			}
		}
	}

	fmt.Printf("Seed complete: %d teams, %d players, %d tournaments, %d matches\n",
		teamCount, teamCount*playersPerTeam, tournamentCount, tournamentCount*matchesPerTour)
}

// pickTeams returns n distinct teams chosen at random.
func pickTeams(faker *gofakeit.Faker, teams []models.Team, n int) []models.Team {
	shuffled := make([]models.Team, len(teams))
	copy(shuffled, teams)
	faker.ShuffleAnySlice(shuffled)
	return shuffled[:n]
}

func getBaseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}
	return dashapi.DefaultBaseURL
}

func fail(op string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
	os.Exit(1)
}
