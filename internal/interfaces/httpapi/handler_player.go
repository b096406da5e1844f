package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/avelent/draftday/internal/domain/player"
)

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	limit, err := queryInt(r, "limit", 25)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.SearchPlayers(ctx, query, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "query", query, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	p, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, p))
}

func (h *Handler) ListEnrichedPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEnrichedPlayers")
	defer span.End()

	season, err := h.seasonFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", 300)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	position := strings.TrimSpace(r.URL.Query().Get("position"))

	rows, err := h.playerService.ListEnriched(ctx, season, position, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list enriched players failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]enrichedPlayerDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, enrichedRowToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type playerDTO struct {
	ID        string `json:"id"`
	Season    int    `json:"season"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	ByeWeek   *int   `json:"byeWeek,omitempty"`
	SleeperID string `json:"sleeperId,omitempty"`
	ESPNID    string `json:"espnId,omitempty"`
	NFLID     string `json:"nflId,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}

type enrichedPlayerDTO struct {
	PlayerID     string   `json:"playerId"`
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Team         string   `json:"team"`
	ECRRank      *float64 `json:"ecrRank,omitempty"`
	ECRPosRank   *float64 `json:"ecrPosRank,omitempty"`
	Tier         *int     `json:"tier,omitempty"`
	TierSource   string   `json:"tierSource,omitempty"`
	ADP          *float64 `json:"adp,omitempty"`
	InjuryStatus string   `json:"injuryStatus,omitempty"`
	InjuryBody   string   `json:"injuryBody,omitempty"`
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:        v.ID,
		Season:    v.Season,
		Name:      v.CleanName,
		Position:  v.Position,
		Team:      v.Team,
		ByeWeek:   v.ByeWeek,
		SleeperID: v.SleeperID,
		ESPNID:    v.ESPNID,
		NFLID:     v.NFLID,
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func enrichedRowToDTO(ctx context.Context, v player.EnrichedRow) enrichedPlayerDTO {
	ctx, span := startSpan(ctx, "httpapi.enrichedRowToDTO")
	defer span.End()

	return enrichedPlayerDTO{
		PlayerID:     v.PlayerID,
		Name:         v.Name,
		Position:     v.Position,
		Team:         v.Team,
		ECRRank:      v.ECRRank,
		ECRPosRank:   v.ECRPosRank,
		Tier:         v.Tier,
		TierSource:   v.TierSource,
		ADP:          v.ADP,
		InjuryStatus: v.InjuryStatus,
		InjuryBody:   v.InjuryBody,
	}
}
