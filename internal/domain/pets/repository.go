package pets

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]Pet, error)

	// SoftDelete marca deleted_at; ErrNotFound si no existe o ya estaba borrada.
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
