package tournaments

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenadesk/arenadesk/go/internal/models"
	"github.com/arenadesk/arenadesk/go/internal/rest"
)

// TournamentsApp defines what the HTTP layer needs from the tournaments
// application.
type TournamentsApp interface {
	CreateTournament(ctx context.Context, tournament models.Tournament) (*models.Tournament, error)
	GetTournament(ctx context.Context, id string) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	UpdateTournament(ctx context.Context, id string, tournament models.Tournament) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
}

// Service exposes tournaments over REST.
type Service struct {
	app TournamentsApp
}

func NewService(app TournamentsApp) *Service {
	return &Service{app: app}
}

type tournamentRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name" validate:"required"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Teams     []string `json:"teams"`
}

func (req tournamentRequest) toModel() models.Tournament {
	return models.Tournament{
		ID:        req.ID,
		Name:      req.Name,
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Teams:     req.Teams,
	}
}

// Routes mounts the tournament endpoints.
func (s *Service) Routes(r chi.Router) {
	r.Get("/tournaments", s.List)
	r.Post("/tournaments", s.Create)
	r.Get("/tournaments/{id}", s.Get)
	r.Put("/tournaments/{id}", s.Update)
	r.Delete("/tournaments/{id}", s.Delete)
}

func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	tournaments, err := s.app.ListTournaments(r.Context())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, tournaments)
}

func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	tournament, err := s.app.GetTournament(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, tournament)
}

func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	var req tournamentRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	tournament, err := s.app.CreateTournament(r.Context(), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusCreated, tournament)
}

func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	var req tournamentRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	tournament, err := s.app.UpdateTournament(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, tournament)
}

func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteTournament(r.Context(), chi.URLParam(r, "id")); err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
