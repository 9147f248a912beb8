package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"friends-directory/internal/domain/quotes"
)

type quoteRepo struct {
	mu   sync.RWMutex
	byID map[string]quotes.Quote
}

func NewQuoteRepo() quotes.Repository {
	return &quoteRepo{
		byID: make(map[string]quotes.Quote),
	}
}

func (r *quoteRepo) Create(ctx context.Context, q quotes.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(q.ID) == "" {
		return errors.New("quote id required")
	}
	if _, exists := r.byID[q.ID]; exists {
		return errors.New("quote already exists")
	}
	r.byID[q.ID] = q
	return nil
}

func (r *quoteRepo) GetByID(ctx context.Context, id string) (quotes.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.byID[id]
	if !ok {
		return quotes.Quote{}, quotes.ErrNotFound
	}
	return q, nil
}

func (r *quoteRepo) ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]quotes.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]quotes.Quote, 0)
	for _, q := range r.byID {
		if q.FriendID != friendID {
			continue
		}
		if q.DeletedAt != nil && !includeDeleted {
			continue
		}
		out = append(out, q)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *quoteRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.byID[id]
	if !ok || q.DeletedAt != nil {
		return quotes.ErrNotFound
	}
	q.DeletedAt = &at
	r.byID[id] = q
	return nil
}
