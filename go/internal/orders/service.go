package orders

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
	"github.com/arenadesk/arenadesk/go/internal/rest"
)

// OrdersApp defines what the HTTP layer needs from the orders application.
type OrdersApp interface {
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// Service exposes orders over REST.
type Service struct {
	app OrdersApp
}

func NewService(app OrdersApp) *Service {
	return &Service{app: app}
}

type orderRequest struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id" validate:"required"`
	TournamentID string  `json:"tournament_id" validate:"required"`
	Quantity     int     `json:"quantity" validate:"min=1"`
	TotalAmount  float64 `json:"total_amount" validate:"gte=0"`
	PaymentID    string  `json:"payment_id"`
	Status       string  `json:"status"`
}

func (req orderRequest) toModel() models.Order {
	return models.Order{
		ID:           req.ID,
		UserID:       req.UserID,
		TournamentID: req.TournamentID,
		Quantity:     req.Quantity,
		TotalAmount:  req.TotalAmount,
		PaymentID:    req.PaymentID,
		Status:       req.Status,
	}
}

// Routes mounts the order endpoints, including the per-user history route.
func (s *Service) Routes(r chi.Router) {
	r.Get("/orders", s.List)
	r.Post("/orders", s.Create)
	r.Get("/orders/{id}", s.Get)
	r.Get("/users/{id}/orders", s.ListByUser)
}

func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	orders, err := s.app.ListOrders(r.Context())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, orders)
}

func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	order, err := s.app.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, order)
}

func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.Error(w, err)
		return
	}
	if fields := rest.Validate(req); fields != nil {
		rest.ValidationError(w, fields)
		return
	}
	order, err := s.app.CreateOrder(r.Context(), req.toModel())
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusCreated, order)
}

// ListByUser returns a user's order history. Behind RequireAuth the caller
// may only read their own history unless they hold the admin role.
func (s *Service) ListByUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if user := rest.UserFrom(r.Context()); user != nil && user.ID != id && user.Role != models.RoleAdmin {
		rest.Error(w, apierror.New(apierror.KindUnauthorized, "cannot view another user's orders"))
		return
	}
	orders, err := s.app.ListOrdersByUser(r.Context(), id)
	if err != nil {
		rest.Error(w, err)
		return
	}
	rest.JSON(w, http.StatusOK, orders)
}
