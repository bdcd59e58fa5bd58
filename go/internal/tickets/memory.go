package tickets

import (
	"context"
	"sort"
	"sync"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

// MemoryRepository is the in-memory ticket store used in dev mode and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	tickets map[string]models.Ticket
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tickets: make(map[string]models.Ticket)}
}

func (r *MemoryRepository) CreateTicket(_ context.Context, ticket models.Ticket) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.ID]; ok {
		return nil, apierror.Newf(apierror.KindValidation, "ticket with id %s already exists", ticket.ID)
	}
	r.tickets[ticket.ID] = ticket
	return &ticket, nil
}

func (r *MemoryRepository) GetTicket(_ context.Context, id string) (*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, errTicketNotFound
	}
	return &ticket, nil
}

func (r *MemoryRepository) ListTickets(_ context.Context) ([]models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tickets := make([]models.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		tickets = append(tickets, t)
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].Name < tickets[j].Name })
	return tickets, nil
}
