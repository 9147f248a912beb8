package friends

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"
	"friends-directory/internal/domain/validation"
	"friends-directory/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = validation.ErrInvalidInput
	ErrNotFound     = errors.New("friend not found")
)

// AddressStore es lo que friends necesita de addresses (evita depender del service).
type AddressStore interface {
	GetByID(ctx context.Context, id string) (addresses.Address, error)
	List(ctx context.Context) ([]addresses.Address, error)
}

type PetLister interface {
	ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]pets.Pet, error)
}

type QuoteLister interface {
	ListByFriend(ctx context.Context, friendID string, includeDeleted bool) ([]quotes.Quote, error)
}

// OverviewCache guarda el resultado de ReadFriendsByCountry. Implementación opcional (redis).
// Invalidate avanza la generación; las claves se arman con la generación leída
// antes de consultar el repo, así un Set tardío queda en una generación muerta.
type OverviewCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, key string) (map[string][]Friend, bool, error)
	Set(ctx context.Context, key string, groups map[string][]Friend) error
	Invalidate(ctx context.Context) error
}

type Service struct {
	repo      Repository
	addresses AddressStore
	pets      PetLister
	quotes    QuoteLister
	cache     OverviewCache
	log       logger.Logger
	now       func() time.Time
}

type Option func(*Service)

func WithOverviewCache(c OverviewCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithLogger(log logger.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(repo Repository, addrs AddressStore, petList PetLister, quoteList QuoteLister, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		addresses: addrs,
		pets:      petList,
		quotes:    quoteList,
		log:       logger.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input es el payload de create/update. ID vacío => create.
type Input struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Birthday  *time.Time
	AddressID *string
	Seeded    bool
}

// InputFrom arma un payload de update a partir de un friend existente.
func InputFrom(f Friend) Input {
	return Input{
		ID:        f.ID,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Birthday:  f.Birthday,
		AddressID: f.AddressID,
		Seeded:    f.Seeded,
	}
}

func (in Input) trimmed() Input {
	in.ID = strings.TrimSpace(in.ID)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	if in.AddressID != nil {
		id := strings.TrimSpace(*in.AddressID)
		if id == "" {
			in.AddressID = nil
		} else {
			in.AddressID = &id
		}
	}
	return in
}

func (s *Service) validate(ctx context.Context, in Input) error {
	errs := Validate(in, s.now())
	if in.AddressID != nil {
		if _, err := uuid.Parse(*in.AddressID); err != nil {
			errs.Set("AddressID", "Address does not exist.")
			return errs.Err()
		}
		if _, err := s.addresses.GetByID(ctx, *in.AddressID); err != nil {
			if !errors.Is(err, addresses.ErrNotFound) {
				return fmt.Errorf("check address: %w", err)
			}
			errs.Set("AddressID", "Address does not exist.")
		}
	}
	return errs.Err()
}

func (s *Service) CreateFriend(ctx context.Context, in Input) (Friend, error) {
	in = in.trimmed()
	if err := s.validate(ctx, in); err != nil {
		return Friend{}, err
	}

	now := s.now()
	f := Friend{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Birthday:  in.Birthday,
		AddressID: in.AddressID,
		Seeded:    in.Seeded,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return Friend{}, fmt.Errorf("create friend: %w", err)
	}
	s.invalidate(ctx)

	return s.hydrate(ctx, f, false)
}

func (s *Service) UpdateFriend(ctx context.Context, in Input) (Friend, error) {
	in = in.trimmed()
	if in.ID == "" {
		return Friend{}, ErrInvalidInput
	}
	if _, err := uuid.Parse(in.ID); err != nil {
		return Friend{}, ErrNotFound
	}
	if err := s.validate(ctx, in); err != nil {
		return Friend{}, err
	}

	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return Friend{}, err
	}

	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.Email = in.Email
	current.Birthday = in.Birthday
	current.AddressID = in.AddressID
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Friend{}, fmt.Errorf("update friend: %w", err)
	}
	s.invalidate(ctx)

	return s.hydrate(ctx, current, false)
}

// ReadFriend lee un friend con dirección, mascotas y quotes.
// includeDeleted decide si se incluyen mascotas/quotes borradas.
func (s *Service) ReadFriend(ctx context.Context, id string, includeDeleted bool) (Friend, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Friend{}, ErrInvalidInput
	}
	if _, err := uuid.Parse(id); err != nil {
		return Friend{}, ErrNotFound
	}
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Friend{}, err
	}
	return s.hydrate(ctx, f, includeDeleted)
}

// Exists responde si hay un friend con ese id (pets/quotes lo usan antes de crear).
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return false, nil
	}
	if _, err := s.repo.GetByID(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) ListFriends(ctx context.Context, useSeeds bool) ([]Friend, error) {
	items, err := s.repo.List(ctx, ListFilter{IncludeSeeded: useSeeds})
	if err != nil {
		return nil, err
	}
	sortFriends(items)
	return items, nil
}

// ReadFriendsByCountry agrupa por país de la dirección. Cada grupo va ordenado
// por apellido, nombre e id.
func (s *Service) ReadFriendsByCountry(ctx context.Context, useSeeds, includeDeleted bool) (map[string][]Friend, error) {
	key, cached := s.overviewKey(ctx, useSeeds, includeDeleted)
	if cached {
		groups, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.log.Warn("overview cache get failed", map[string]any{"key": key, "error": err.Error()})
		case ok:
			return groups, nil
		}
	}

	items, err := s.repo.List(ctx, ListFilter{IncludeSeeded: useSeeds})
	if err != nil {
		return nil, err
	}

	all, err := s.addresses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	byID := make(map[string]addresses.Address, len(all))
	for _, a := range all {
		byID[a.ID] = a
	}

	groups := make(map[string][]Friend)
	for _, f := range items {
		if f.AddressID != nil {
			if a, ok := byID[*f.AddressID]; ok {
				f.Address = &a
			}
		}
		if f, err = s.attachDependents(ctx, f, includeDeleted); err != nil {
			return nil, err
		}
		country := f.Country()
		groups[country] = append(groups[country], f)
	}
	for country := range groups {
		sortFriends(groups[country])
	}

	if cached {
		if err := s.cache.Set(ctx, key, groups); err != nil {
			s.log.Warn("overview cache set failed", map[string]any{"key": key, "error": err.Error()})
		}
	}
	return groups, nil
}

func (s *Service) hydrate(ctx context.Context, f Friend, includeDeleted bool) (Friend, error) {
	if f.AddressID != nil {
		a, err := s.addresses.GetByID(ctx, *f.AddressID)
		switch {
		case err == nil:
			f.Address = &a
		case errors.Is(err, addresses.ErrNotFound):
			// referencia colgante: se muestra sin dirección
		default:
			return Friend{}, fmt.Errorf("read address: %w", err)
		}
	}
	return s.attachDependents(ctx, f, includeDeleted)
}

func (s *Service) attachDependents(ctx context.Context, f Friend, includeDeleted bool) (Friend, error) {
	ps, err := s.pets.ListByFriend(ctx, f.ID, includeDeleted)
	if err != nil {
		return Friend{}, fmt.Errorf("list pets: %w", err)
	}
	qs, err := s.quotes.ListByFriend(ctx, f.ID, includeDeleted)
	if err != nil {
		return Friend{}, fmt.Errorf("list quotes: %w", err)
	}
	f.Pets = ps
	f.Quotes = qs
	return f, nil
}

// overviewKey devuelve false si no hay cache o no se pudo leer la generación;
// en ese caso se lee directo del repo.
func (s *Service) overviewKey(ctx context.Context, useSeeds, includeDeleted bool) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		s.log.Warn("overview cache generation failed", map[string]any{"error": err.Error()})
		return "", false
	}
	return fmt.Sprintf("gen=%d:seeds=%t:deleted=%t", gen, useSeeds, includeDeleted), true
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("overview cache invalidate failed", map[string]any{"error": err.Error()})
	}
}

func sortFriends(items []Friend) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !strings.EqualFold(a.LastName, b.LastName) {
			return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
		}
		if !strings.EqualFold(a.FirstName, b.FirstName) {
			return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
		}
		return a.ID < b.ID
	})
}
