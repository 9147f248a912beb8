package quotes

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, q Quote) error
	GetByID(ctx context.Context, id string) (Quote, error)
	ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]Quote, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
