package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/lunarium/arcana/internal/contracts"
	"github.com/lunarium/arcana/internal/external/geo"
	"github.com/lunarium/arcana/internal/reading"
	"github.com/lunarium/arcana/internal/tarot"
	"github.com/lunarium/arcana/internal/users"
	"github.com/lunarium/arcana/pkg/config"
	"github.com/lunarium/arcana/pkg/database"
	"github.com/lunarium/arcana/pkg/httputil"
	"github.com/lunarium/arcana/pkg/logger"
	"github.com/lunarium/arcana/pkg/redis"
)

// app bundles the shared wiring used by the subcommands. Each command
// builds exactly the slice of this it needs through initApp.
type app struct {
	cfg    *config.Config
	logger *logger.Logger
	db     *database.DB
	redis  *redis.Client
	cache  *redis.Cache

	cardRepo    *tarot.Repository
	readingRepo *reading.Repository
	userRepo    *users.Repository

	catalog *tarot.Catalog
	service *reading.Service
	geo     *geo.Client
}

// initApp loads config and connects the full dependency graph. Callers
// must defer a.close().
func initApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	var cache *redis.Cache
	if redisClient.Enabled() {
		cache = redis.NewCache(redisClient, "arcana")
	}

	cardRepo := tarot.NewRepository(db.Pool)
	readingRepo := reading.NewRepository(db.Pool)
	userRepo := users.NewRepository(db.Pool)

	rng := tarot.NewRNG(rand.Uint64(), rand.Uint64())
	clock := contracts.SystemClock()

	catalog := tarot.NewCatalog(cardRepo, clock, cfg.CatalogTTL, rng)
	drawer := tarot.NewDrawer(rng)
	composer := reading.NewComposer(rng)

	service := reading.NewService(
		catalog, drawer, composer,
		readingRepo, userRepo,
		clock, cfg.Location(), cache, log,
	)

	httpClient := httputil.New(log)
	geoClient := geo.NewClient(cfg, httpClient, cache, log)

	return &app{
		cfg:         cfg,
		logger:      log,
		db:          db,
		redis:       redisClient,
		cache:       cache,
		cardRepo:    cardRepo,
		readingRepo: readingRepo,
		userRepo:    userRepo,
		catalog:     catalog,
		service:     service,
		geo:         geoClient,
	}, nil
}

// close releases connections in reverse order of acquisition.
func (a *app) close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
