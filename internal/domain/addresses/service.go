package addresses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"friends-directory/internal/domain/validation"
	"friends-directory/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = validation.ErrInvalidInput
	ErrNotFound     = errors.New("address not found")
)

// Invalidator se notifica cuando cambia una dirección (el overview agrupa por país).
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Service struct {
	repo        Repository
	invalidator Invalidator
	log         logger.Logger
	now         func() time.Time
}

type Option func(*Service)

func WithInvalidator(inv Invalidator) Option {
	return func(s *Service) { s.invalidator = inv }
}

func WithLogger(log logger.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		log:  logger.NewNop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input es el payload de create/update. ID vacío => create.
type Input struct {
	ID            string
	StreetAddress string
	ZipCode       int
	City          string
	Country       string
	Seeded        bool
}

func (in Input) trimmed() Input {
	in.ID = strings.TrimSpace(in.ID)
	in.StreetAddress = strings.TrimSpace(in.StreetAddress)
	in.City = strings.TrimSpace(in.City)
	in.Country = strings.TrimSpace(in.Country)
	return in
}

func (s *Service) ReadAddress(ctx context.Context, id string) (Address, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Address{}, ErrInvalidInput
	}
	if _, err := uuid.Parse(id); err != nil {
		return Address{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAddresses(ctx context.Context) ([]Address, error) {
	return s.repo.List(ctx)
}

func (s *Service) CreateAddress(ctx context.Context, in Input) (Address, error) {
	in = in.trimmed()
	if err := Validate(in).Err(); err != nil {
		return Address{}, err
	}

	now := s.now()
	a := Address{
		ID:            uuid.NewString(),
		StreetAddress: in.StreetAddress,
		ZipCode:       in.ZipCode,
		City:          in.City,
		Country:       in.Country,
		Seeded:        in.Seeded,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Address{}, fmt.Errorf("create address: %w", err)
	}
	s.invalidate(ctx)
	return a, nil
}

func (s *Service) UpdateAddress(ctx context.Context, in Input) (Address, error) {
	in = in.trimmed()
	if in.ID == "" {
		return Address{}, ErrInvalidInput
	}
	if _, err := uuid.Parse(in.ID); err != nil {
		return Address{}, ErrNotFound
	}
	if err := Validate(in).Err(); err != nil {
		return Address{}, err
	}

	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return Address{}, err
	}

	current.StreetAddress = in.StreetAddress
	current.ZipCode = in.ZipCode
	current.City = in.City
	current.Country = in.Country
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Address{}, fmt.Errorf("update address: %w", err)
	}
	s.invalidate(ctx)
	return current, nil
}

// La invalidación es best-effort: un fallo solo se registra.
func (s *Service) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.log.Warn("overview cache invalidate failed", map[string]any{"error": err.Error()})
	}
}
