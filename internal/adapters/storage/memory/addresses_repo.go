package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"friends-directory/internal/domain/addresses"
)

type addressRepo struct {
	mu   sync.RWMutex
	byID map[string]addresses.Address
}

func NewAddressRepo() addresses.Repository {
	return &addressRepo{
		byID: make(map[string]addresses.Address),
	}
}

func (r *addressRepo) Create(ctx context.Context, a addresses.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("address id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("address already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *addressRepo) Update(ctx context.Context, a addresses.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return addresses.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *addressRepo) GetByID(ctx context.Context, id string) (addresses.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return addresses.Address{}, addresses.ErrNotFound
	}
	return a, nil
}

func (r *addressRepo) List(ctx context.Context) ([]addresses.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]addresses.Address, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
