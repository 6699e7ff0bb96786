package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage
type Repository interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, limit, offset int) ([]*Lead, error)
}

// InMemoryRepository is an in-memory Repository used in tests and when no
// database is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
	order []string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		leads: make(map[string]*Lead),
	}
}

// Create stores a new lead in memory.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Source:    req.Source,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.leads[lead.ID] = lead
	r.order = append(r.order, lead.ID)
	r.mu.Unlock()

	return lead, nil
}

// GetByID retrieves a lead by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, ErrLeadNotFound
	}

	return lead, nil
}

// List returns leads in reverse insertion order.
func (r *InMemoryRepository) List(ctx context.Context, limit, offset int) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Lead, 0, limit)
	for i := len(r.order) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.leads[r.order[i]])
	}
	return out, nil
}
