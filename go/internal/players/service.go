package players

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenadesk/arenadesk/go/internal/models"
	"github.com/arenadesk/arenadesk/go/internal/rest"
)

// PlayersApp defines what the HTTP layer needs from the players
// application.
type PlayersApp interface {
	CreatePlayer(ctx context.Context, player models.Player) (*models.Player, error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id string, player models.Player) (*models.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

// Service exposes players over REST.
type Service struct {
	app PlayersApp
}

func NewService(app PlayersApp) *Service {
	return &Service{app: app}
}

type playerRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required"`
	InGameName string `json:"in_game_name" validate:"required"`
	Role       string `json:"role"`
	TeamID     string `json:"team_id"`
}

func (req playerRequest) toModel() models.Player {
	return models.Player{
		ID:         req.ID,
		Name:       req.Name,
		InGameName: req.InGameName,
		Role:       req.Role,
		TeamID:     req.TeamID,
	}
}

// Routes mounts the player endpoints.
func (s *Service) Routes(r chi.Router) {
	r.Get("/players", s.List)
	r.Post("/players", s.Create)
	r.Get("/players/{id}", s.Get)
	r.Put("/players/{id}", s.Update)
	r.Delete("/players/{id}", s.Delete)
}

func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	players, err := s.app.ListPlayers(r.Context())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, players)
}

func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	player, err := s.app.GetPlayer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, player)
}

func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	player, err := s.app.CreatePlayer(r.Context(), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusCreated, player)
}

func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	player, err := s.app.UpdatePlayer(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, player)
}

func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeletePlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
