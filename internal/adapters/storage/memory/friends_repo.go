package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"friends-directory/internal/domain/friends"
)

type friendRepo struct {
	mu   sync.RWMutex
	byID map[string]friends.Friend
}

func NewFriendRepo() friends.Repository {
	return &friendRepo{
		byID: make(map[string]friends.Friend),
	}
}

// Solo se guardan columnas propias; lo hidratado (Address, Pets, Quotes) se descarta.
func stripFriend(f friends.Friend) friends.Friend {
	f.Address = nil
	f.Pets = nil
	f.Quotes = nil
	return f
}

func (r *friendRepo) Create(ctx context.Context, f friends.Friend) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(f.ID) == "" {
		return errors.New("friend id required")
	}
	if _, exists := r.byID[f.ID]; exists {
		return errors.New("friend already exists")
	}
	r.byID[f.ID] = stripFriend(f)
	return nil
}

func (r *friendRepo) Update(ctx context.Context, f friends.Friend) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[f.ID]; !exists {
		return friends.ErrNotFound
	}
	r.byID[f.ID] = stripFriend(f)
	return nil
}

func (r *friendRepo) GetByID(ctx context.Context, id string) (friends.Friend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return friends.Friend{}, friends.ErrNotFound
	}
	return f, nil
}

func (r *friendRepo) List(ctx context.Context, filter friends.ListFilter) ([]friends.Friend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]friends.Friend, 0, len(r.byID))
	for _, f := range r.byID {
		if f.Seeded && !filter.IncludeSeeded {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}
