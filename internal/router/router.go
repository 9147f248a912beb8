package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	_ "friends-directory/docs"
	mem "friends-directory/internal/adapters/storage/memory"
	pg "friends-directory/internal/adapters/storage/postgres"
	"friends-directory/internal/domain/addresses"
	"friends-directory/internal/domain/friends"
	"friends-directory/internal/domain/pets"
	"friends-directory/internal/domain/quotes"
	"friends-directory/internal/middleware"
	"friends-directory/internal/pages"
	"friends-directory/internal/platform/logger"
	"friends-directory/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: cache del overview (redis).
	Cache friends.OverviewCache

	Logger  logger.Logger
	AppName string

	// Seed carga los datos demo al armar el router (pensado para memoria).
	Seed bool
}

// Services agrupa los services por módulo, ya cableados a su storage.
type Services struct {
	Friends   *friends.Service
	Addresses *addresses.Service
	Pets      *pets.Service
	Quotes    *quotes.Service
}

func NewServices(db *sql.DB, cache friends.OverviewCache, log logger.Logger) Services {
	if log == nil {
		log = logger.NewNop()
	}

	var (
		friendRepo  friends.Repository
		addressRepo addresses.Repository
		petRepo     pets.Repository
		quoteRepo   quotes.Repository
	)

	if db != nil {
		friendRepo = pg.NewFriendsRepo(db)
		addressRepo = pg.NewAddressesRepo(db)
		petRepo = pg.NewPetsRepo(db)
		quoteRepo = pg.NewQuotesRepo(db)
	} else {
		friendRepo = mem.NewFriendRepo()
		addressRepo = mem.NewAddressRepo()
		petRepo = mem.NewPetRepo()
		quoteRepo = mem.NewQuoteRepo()
	}

	var (
		friendOpts  = []friends.Option{friends.WithLogger(log.With(map[string]any{"service": "friends"}))}
		addressOpts = []addresses.Option{addresses.WithLogger(log.With(map[string]any{"service": "addresses"}))}
		petOpts     = []pets.Option{pets.WithLogger(log.With(map[string]any{"service": "pets"}))}
		quoteOpts   = []quotes.Option{quotes.WithLogger(log.With(map[string]any{"service": "quotes"}))}
	)
	if cache != nil {
		friendOpts = append(friendOpts, friends.WithOverviewCache(cache))
		addressOpts = append(addressOpts, addresses.WithInvalidator(cache))
		petOpts = append(petOpts, pets.WithInvalidator(cache))
		quoteOpts = append(quoteOpts, quotes.WithInvalidator(cache))
	}

	return Services{
		Friends:   friends.NewService(friendRepo, addressRepo, petRepo, quoteRepo, friendOpts...),
		Addresses: addresses.NewService(addressRepo, addressOpts...),
		Pets:      pets.NewService(petRepo, petOpts...),
		Quotes:    quotes.NewService(quoteRepo, quoteOpts...),
	}
}

func (s Services) SeedLoader(log logger.Logger) seed.Loader {
	return seed.Loader{
		Friends:   s.Friends,
		Addresses: s.Addresses,
		Pets:      s.Pets,
		Quotes:    s.Quotes,
		Logger:    log,
	}
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	svcs := NewServices(opts.DB, opts.Cache, log)

	if opts.Seed {
		file, err := seed.Default()
		if err != nil {
			return nil, err
		}
		if _, err := svcs.SeedLoader(log).Load(context.Background(), file); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	renderer, err := pages.NewRenderer(opts.AppName)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Páginas HTML
	pages.RegisterRoutes(r, pages.NewHandler(pages.Deps{
		Friends:   svcs.Friends,
		Addresses: svcs.Addresses,
		Pets:      svcs.Pets,
		Quotes:    svcs.Quotes,
		Renderer:  renderer,
		Logger:    log,
	}))

	// API JSON por módulo
	r.Route("/api", func(api chi.Router) {
		friends.RegisterRoutes(api, svcs.Friends)
		addresses.RegisterRoutes(api, svcs.Addresses)
		pets.RegisterRoutes(api, svcs.Pets, svcs.Friends)
		quotes.RegisterRoutes(api, svcs.Quotes, svcs.Friends)
	})

	return r, nil
}
