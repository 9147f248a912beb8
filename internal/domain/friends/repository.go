package friends

import "context"

type Repository interface {
	Create(ctx context.Context, f Friend) error
	Update(ctx context.Context, f Friend) error
	GetByID(ctx context.Context, id string) (Friend, error)
	List(ctx context.Context, filter ListFilter) ([]Friend, error)
}

type ListFilter struct {
	// IncludeSeeded=false devuelve solo friends creados por usuarios.
	IncludeSeeded bool
}
