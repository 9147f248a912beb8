package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"friends-directory/internal/domain/validation"
	"friends-directory/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = validation.ErrInvalidInput
	ErrNotFound     = errors.New("pet not found")
)

// Invalidator se notifica cuando cambian los dependientes de un friend.
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

type CreateInput struct {
	Name   string
	Kind   Kind
	Mood   Mood
	Seeded bool
}

func (s *Service) Create(ctx context.Context, friendID string, in CreateInput) (Pet, error) {
	errs := validation.Errors{}
	if strings.TrimSpace(friendID) == "" {
		errs.Set("FriendID", "Friend is required.")
	}
	if validation.Blank(in.Name) {
		errs.Set("Name", "Name is required.")
	} else if validation.TooLong(strings.TrimSpace(in.Name), 100) {
		errs.Set("Name", "Name cannot exceed 100 characters.")
	}
	if _, ok := validKinds[in.Kind]; !ok {
		errs.Set("Kind", "Kind must be one of dog, cat, rabbit, fish, bird.")
	}
	mood := in.Mood
	if mood == "" {
		mood = MoodHappy
	}
	if _, ok := validMoods[mood]; !ok {
		errs.Set("Mood", "Mood is not supported.")
	}
	if err := errs.Err(); err != nil {
		return Pet{}, err
	}

	p := Pet{
		ID:        uuid.NewString(),
		FriendID:  strings.TrimSpace(friendID),
		Name:      strings.TrimSpace(in.Name),
		Kind:      in.Kind,
		Mood:      mood,
		Seeded:    in.Seeded,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]Pet, error) {
	return s.repo.ListByFriend(ctx, friendID, includeDeleted)
}

// DeletePet borra (lógicamente) la mascota y devuelve el registro ya marcado.
func (s *Service) DeletePet(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	if _, err := uuid.Parse(id); err != nil {
		return Pet{}, ErrNotFound
	}
	if err := s.repo.SoftDelete(ctx, id, s.now()); err != nil {
		return Pet{}, err
	}
	s.invalidate(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *Service) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.log.Warn("overview cache invalidate failed", map[string]any{"error": err.Error()})
	}
}
