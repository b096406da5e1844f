package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/avelent/draftday/external/cbssports"
	"github.com/avelent/draftday/external/fantasypros"
	"github.com/avelent/draftday/external/sleeper"
	"github.com/avelent/draftday/internal/config"
	"github.com/avelent/draftday/internal/domain/draft"
	"github.com/avelent/draftday/internal/domain/importrun"
	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/domain/ranking"
	"github.com/avelent/draftday/internal/infrastructure/repository/memory"
	"github.com/avelent/draftday/internal/infrastructure/repository/postgres"
	"github.com/avelent/draftday/internal/interfaces/httpapi"
	"github.com/avelent/draftday/internal/platform/logging"
	"github.com/avelent/draftday/internal/platform/resilience"
	"github.com/avelent/draftday/internal/usecase"
)

// storage bundles the fact store with the read-side repositories so the
// memory and postgres backends wire identically.
type storage struct {
	facts   usecase.FactStore
	players player.Repository
	ranks   ranking.Repository
	board   draft.Repository
	runs    importrun.Repository
	closer  func() error
}

// Services is the fully wired usecase layer. Both the HTTP server and the
// ingest CLI build on it.
type Services struct {
	Player     *usecase.PlayerService
	Draft      *usecase.DraftService
	Suggestion *usecase.SuggestionService
	Catalog    *usecase.CatalogImportService
	Rankings   *usecase.RankingsImportService
	ADP        *usecase.ADPImportService
	Injury     *usecase.InjuryImportService
	Seed       *usecase.SeedImportService
	Refresh    *usecase.RefreshService
	Tracker    *usecase.ImportTracker

	Close func() error
}

func NewServices(cfg config.Config, logger *slog.Logger) (*Services, error) {
	if logger == nil {
		logger = slog.Default()
	}

	st, err := buildStorage(cfg)
	if err != nil {
		return nil, err
	}

	platformLogger := logging.Default()
	breaker := resilience.CircuitBreakerConfig{
		Enabled:          cfg.ProviderCircuitEnabled,
		FailureThreshold: cfg.ProviderCircuitFailureCount,
		OpenTimeout:      cfg.ProviderCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.ProviderCircuitHalfOpenMaxReq,
	}

	sleeperClient := sleeper.NewClient(sleeper.ClientConfig{
		BaseURL:        cfg.SleeperBaseURL,
		Timeout:        cfg.SleeperTimeout,
		MaxRetries:     cfg.SleeperMaxRetries,
		RequestsPerSec: cfg.SleeperRequestsPerSec,
		Logger:         platformLogger,
		CircuitBreaker: breaker,
	})
	rankingsClient := fantasypros.NewClient(fantasypros.ClientConfig{
		UserAgent:      cfg.RankingsUserAgent,
		Timeout:        cfg.RankingsTimeout,
		MaxRetries:     cfg.RankingsMaxRetries,
		Logger:         platformLogger,
		CircuitBreaker: breaker,
	})
	injuryClient := cbssports.NewClient(cbssports.ClientConfig{
		InjuryURL:      cfg.CBSInjuryURL,
		Timeout:        cfg.CBSTimeout,
		MaxRetries:     cfg.CBSMaxRetries,
		Logger:         platformLogger,
		CircuitBreaker: breaker,
	})

	tracker := usecase.NewImportTracker(st.runs, logger)
	reconciler := usecase.NewFactReconciler()

	catalogSvc := usecase.NewCatalogImportService(sleeperClient, st.facts, tracker, logger)
	rankingsSvc := usecase.NewRankingsImportService(rankingsClient, fantasypros.NewTableParser(), st.facts, reconciler, tracker, logger)
	adpSvc := usecase.NewADPImportService(rankingsClient, st.facts, reconciler, tracker, logger)
	injurySvc := usecase.NewInjuryImportService(injuryClient, st.facts, reconciler, tracker, logger)
	seedSvc := usecase.NewSeedImportService(st.facts, reconciler, tracker, logger)
	refreshSvc := usecase.NewRefreshService(catalogSvc, rankingsSvc, adpSvc, injurySvc, cfg.RankingsURL, cfg.ADPURL, logger)

	return &Services{
		Player:     usecase.NewPlayerService(st.players),
		Draft:      usecase.NewDraftService(st.board, st.players, st.ranks),
		Suggestion: usecase.NewSuggestionService(st.players, st.board),
		Catalog:    catalogSvc,
		Rankings:   rankingsSvc,
		ADP:        adpSvc,
		Injury:     injurySvc,
		Seed:       seedSvc,
		Refresh:    refreshSvc,
		Tracker:    tracker,
		Close:      st.closer,
	}, nil
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	services, err := NewServices(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(
		services.Player,
		services.Draft,
		services.Suggestion,
		services.Catalog,
		services.Rankings,
		services.ADP,
		services.Injury,
		services.Seed,
		services.Refresh,
		services.Tracker,
		cfg.Season,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, services.Close, nil
}

func buildStorage(cfg config.Config) (storage, error) {
	if cfg.MemoryStore {
		store := memory.NewStore(memory.SeedPlayers())
		return storage{
			facts:   store,
			players: store.Players(),
			ranks:   store.Ranks(),
			board:   memory.NewDraftRepository(),
			runs:    memory.NewImportRunRepository(),
			closer:  func() error { return nil },
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return storage{}, err
	}
	return storage{
		facts:   postgres.NewStore(db),
		players: postgres.NewPlayerRepository(db),
		ranks:   postgres.NewRankingRepository(db),
		board:   postgres.NewDraftRepository(db),
		runs:    postgres.NewImportRunRepository(db),
		closer:  db.Close,
	}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, true)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
