package matches

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenadesk/arenadesk/go/internal/models"
	"github.com/arenadesk/arenadesk/go/internal/rest"
)

// MatchesApp defines what the HTTP layer needs from the matches
// application.
type MatchesApp interface {
	CreateMatch(ctx context.Context, match models.Match) (*models.Match, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id string, match models.Match) (*models.Match, error)
	DeleteMatch(ctx context.Context, id string) error
}

// Service exposes matches over REST.
type Service struct {
	app MatchesApp
}

func NewService(app MatchesApp) *Service {
	return &Service{app: app}
}

type matchRequest struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournament_id" validate:"required"`
	Team1ID      string `json:"team1_id" validate:"required"`
	Team2ID      string `json:"team2_id" validate:"required,nefield=Team1ID"`
	Team1Score   int    `json:"team1_score" validate:"gte=0"`
	Team2Score   int    `json:"team2_score" validate:"gte=0"`
	Date         string `json:"date"`
}

func (req matchRequest) toModel() models.Match {
	return models.Match{
		ID:           req.ID,
		TournamentID: req.TournamentID,
		Team1ID:      req.Team1ID,
		Team2ID:      req.Team2ID,
		Team1Score:   req.Team1Score,
		Team2Score:   req.Team2Score,
		Date:         req.Date,
	}
}

// Routes mounts the match endpoints.
func (s *Service) Routes(r chi.Router) {
	r.Get("/matches", s.List)
	r.Post("/matches", s.Create)
	r.Get("/matches/{id}", s.Get)
	r.Put("/matches/{id}", s.Update)
	r.Delete("/matches/{id}", s.Delete)
}

func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	matches, err := s.app.ListMatches(r.Context())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, matches)
}

func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	match, err := s.app.GetMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, match)
}

func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	match, err := s.app.CreateMatch(r.Context(), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusCreated, match)
}

func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	match, err := s.app.UpdateMatch(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, match)
}

func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteMatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
