package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/avelent/draftday/internal/usecase"
)

type Handler struct {
	playerService     *usecase.PlayerService
	draftService      *usecase.DraftService
	suggestionService *usecase.SuggestionService
	catalogService    *usecase.CatalogImportService
	rankingsService   *usecase.RankingsImportService
	adpService        *usecase.ADPImportService
	injuryService     *usecase.InjuryImportService
	seedService       *usecase.SeedImportService
	refreshService    *usecase.RefreshService
	tracker           *usecase.ImportTracker
	defaultSeason     int
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	draftService *usecase.DraftService,
	suggestionService *usecase.SuggestionService,
	catalogService *usecase.CatalogImportService,
	rankingsService *usecase.RankingsImportService,
	adpService *usecase.ADPImportService,
	injuryService *usecase.InjuryImportService,
	seedService *usecase.SeedImportService,
	refreshService *usecase.RefreshService,
	tracker *usecase.ImportTracker,
	defaultSeason int,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		playerService:     playerService,
		draftService:      draftService,
		suggestionService: suggestionService,
		catalogService:    catalogService,
		rankingsService:   rankingsService,
		adpService:        adpService,
		injuryService:     injuryService,
		seedService:       seedService,
		refreshService:    refreshService,
		tracker:           tracker,
		defaultSeason:     defaultSeason,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// seasonFromQuery resolves the season for read endpoints: an explicit
// ?season= wins, otherwise the configured default applies.
func (h *Handler) seasonFromQuery(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("season"))
	if raw == "" {
		return h.defaultSeason, nil
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season <= 0 {
		return 0, fmt.Errorf("%w: season must be a positive integer", usecase.ErrInvalidInput)
	}
	return season, nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}
