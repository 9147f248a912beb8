package addresses

import "context"

type Repository interface {
	Create(ctx context.Context, a Address) error
	Update(ctx context.Context, a Address) error
	GetByID(ctx context.Context, id string) (Address, error)
	List(ctx context.Context) ([]Address, error)
}
