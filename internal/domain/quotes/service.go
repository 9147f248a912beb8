package quotes

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
	ErrNotFound     = errors.New("quote not found")
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
	Text   string
	Author string
	Seeded bool
}

func (s *Service) Create(ctx context.Context, friendID string, in CreateInput) (Quote, error) {
	errs := validation.Errors{}
	if strings.TrimSpace(friendID) == "" {
		errs.Set("FriendID", "Friend is required.")
	}
	if validation.Blank(in.Text) {
		errs.Set("Text", "Quote text is required.")
	} else if validation.TooLong(strings.TrimSpace(in.Text), 1000) {
		errs.Set("Text", "Quote text cannot exceed 1000 characters.")
	}
	if validation.TooLong(strings.TrimSpace(in.Author), 200) {
		errs.Set("Author", "Author cannot exceed 200 characters.")
	}
	if err := errs.Err(); err != nil {
		return Quote{}, err
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = "Unknown"
	}

	q := Quote{
		ID:        uuid.NewString(),
		FriendID:  strings.TrimSpace(friendID),
		Text:      strings.TrimSpace(in.Text),
		Author:    author,
		Seeded:    in.Seeded,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, q); err != nil {
		return Quote{}, err
	}
	s.invalidate(ctx)
	return q, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Quote, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]Quote, error) {
	return s.repo.ListByFriend(ctx, friendID, includeDeleted)
}

// DeleteQuote marca la quote como borrada y la devuelve.
func (s *Service) DeleteQuote(ctx context.Context, id string) (Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Quote{}, ErrInvalidInput
	}
	if _, err := uuid.Parse(id); err != nil {
		return Quote{}, ErrNotFound
	}
	if err := s.repo.SoftDelete(ctx, id, s.now()); err != nil {
		return Quote{}, err
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
