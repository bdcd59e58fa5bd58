package teams

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenadesk/arenadesk/go/internal/models"
	"github.com/arenadesk/arenadesk/go/internal/rest"
)

// TeamsApp defines what the HTTP layer needs from the teams application.
type TeamsApp interface {
	CreateTeam(ctx context.Context, team models.Team) (*models.Team, error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id string, team models.Team) (*models.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

// Service exposes teams over REST.
type Service struct {
	app TeamsApp
}

func NewService(app TeamsApp) *Service {
	return &Service{app: app}
}

type teamRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required"`
	Region string `json:"region"`
	Logo   string `json:"logo"`
}

func (req teamRequest) toModel() models.Team {
	return models.Team{
		ID:     req.ID,
		Name:   req.Name,
		Region: req.Region,
		Logo:   req.Logo,
	}
}

// Routes mounts the team endpoints.
func (s *Service) Routes(r chi.Router) {
	r.Get("/teams", s.List)
	r.Post("/teams", s.Create)
	r.Get("/teams/{id}", s.Get)
	r.Put("/teams/{id}", s.Update)
	r.Delete("/teams/{id}", s.Delete)
}

func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	teams, err := s.app.ListTeams(r.Context())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, teams)
}

func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	team, err := s.app.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, team)
}

func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	team, err := s.app.CreateTeam(r.Context(), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusCreated, team)
}

func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	team, err := s.app.UpdateTeam(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, team)
}

func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteTeam(r.Context(), chi.URLParam(r, "id")); err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
