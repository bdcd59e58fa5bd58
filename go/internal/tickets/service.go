package tickets

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenadesk/arenadesk/go/internal/models"
	"github.com/arenadesk/arenadesk/go/internal/rest"
)

// TicketsApp defines what the HTTP layer needs from the tickets
// application.
type TicketsApp interface {
	CreateTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error)
	GetTicket(ctx context.Context, id string) (*models.Ticket, error)
	ListTickets(ctx context.Context) ([]models.Ticket, error)
}

// Service exposes ticket tiers over REST.
type Service struct {
	app TicketsApp
}

func NewService(app TicketsApp) *Service {
	return &Service{app: app}
}

type ticketRequest struct {
	ID           string  `json:"id"`
	TournamentID string  `json:"tournament_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	Available    int     `json:"available" validate:"gte=0"`
}

func (req ticketRequest) toModel() models.Ticket {
	return models.Ticket{
		ID:           req.ID,
		TournamentID: req.TournamentID,
		Name:         req.Name,
		Price:        req.Price,
		Available:    req.Available,
	}
}

// Routes mounts the ticket endpoints.
func (s *Service) Routes(r chi.Router) {
	r.Get("/tickets", s.List)
	r.Post("/tickets", s.Create)
	r.Get("/tickets/{id}", s.Get)
}

func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.app.ListTickets(r.Context())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, tickets)
}

func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	ticket, err := s.app.GetTicket(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, ticket)
}

func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	var req ticketRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	ticket, err := s.app.CreateTicket(r.Context(), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusCreated, ticket)
}
