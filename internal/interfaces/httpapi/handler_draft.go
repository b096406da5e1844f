package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/avelent/draftday/internal/domain/draft"
	"github.com/avelent/draftday/internal/domain/player"
	"github.com/avelent/draftday/internal/usecase"
)

func (h *Handler) ListTeamSlots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamSlots")
	defer span.End()

	slots, err := h.draftService.ListTeamSlots(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list team slots failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamSlotDTO, 0, len(slots))
	for _, slot := range slots {
		items = append(items, teamSlotToDTO(ctx, slot))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) InitTeamSlots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InitTeamSlots")
	defer span.End()

	slots, err := h.draftService.InitTeamSlots(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "init team slots failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamSlotDTO, 0, len(slots))
	for _, slot := range slots {
		items = append(items, teamSlotToDTO(ctx, slot))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpsertTeamSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertTeamSlot")
	defer span.End()

	var req upsertTeamSlotRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	slot, err := h.draftService.UpsertTeamSlot(ctx, draft.TeamSlot{
		SlotID:        req.SlotID,
		TeamName:      req.TeamName,
		DraftPosition: req.DraftPosition,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert team slot failed", "slot_id", req.SlotID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamSlotToDTO(ctx, slot))
}

func (h *Handler) ListPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPicks")
	defer span.End()

	picks, err := h.draftService.ListPicks(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list picks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pickDTO, 0, len(picks))
	for _, pick := range picks {
		items = append(items, pickToDTO(ctx, pick))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePick")
	defer span.End()

	var req createPickRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pick, err := h.draftService.CreatePick(ctx, draft.Pick{
		RoundNo:    req.RoundNo,
		OverallNo:  req.OverallNo,
		TeamSlotID: req.TeamSlotID,
		PlayerID:   req.PlayerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create pick failed", "overall_no", req.OverallNo, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, pickToDTO(ctx, pick))
}

func (h *Handler) DeletePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePick")
	defer span.End()

	pickID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("pickID")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: pick id must be an integer", usecase.ErrInvalidInput))
		return
	}

	if err := h.draftService.DeletePick(ctx, pickID); err != nil {
		h.logger.WarnContext(ctx, "delete pick failed", "pick_id", pickID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSuggestions")
	defer span.End()

	season, err := h.seasonFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limitTop, err := queryInt(r, "top", 3)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limitNext, err := queryInt(r, "next", 10)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	position := strings.TrimSpace(r.URL.Query().Get("position"))

	suggestions, err := h.suggestionService.Suggest(ctx, season, position, limitTop, limitNext)
	if err != nil {
		h.logger.WarnContext(ctx, "get suggestions failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suggestionsDTO{
		Top:  playersToDTOs(ctx, suggestions.Top),
		Next: playersToDTOs(ctx, suggestions.Next),
	})
}

func (h *Handler) SetTierOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetTierOverride")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req tierOverrideRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.draftService.SetTierOverride(ctx, playerID, req.Tier); err != nil {
		h.logger.WarnContext(ctx, "set tier override failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"playerId": playerID, "tier": req.Tier})
}

func (h *Handler) ClearTierOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearTierOverride")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.draftService.SetTierOverride(ctx, playerID, nil); err != nil {
		h.logger.WarnContext(ctx, "clear tier override failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"playerId": playerID, "tier": nil})
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNotes")
	defer span.End()

	playerID := strings.TrimSpace(r.URL.Query().Get("player_id"))
	var teamSlotID *int
	if raw := strings.TrimSpace(r.URL.Query().Get("team_slot_id")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: team_slot_id must be an integer", usecase.ErrInvalidInput))
			return
		}
		teamSlotID = &v
	}

	notes, err := h.draftService.ListNotes(ctx, playerID, teamSlotID)
	if err != nil {
		h.logger.WarnContext(ctx, "list notes failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]noteDTO, 0, len(notes))
	for _, note := range notes {
		items = append(items, noteToDTO(ctx, note))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddNote")
	defer span.End()

	var req addNoteRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	note, err := h.draftService.AddNote(ctx, draft.Note{
		PlayerID:   req.PlayerID,
		TeamSlotID: req.TeamSlotID,
		Text:       req.Text,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add note failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, noteToDTO(ctx, note))
}

type upsertTeamSlotRequest struct {
	SlotID        int    `json:"slotId" validate:"required,min=1"`
	TeamName      string `json:"teamName" validate:"required,max=100"`
	DraftPosition int    `json:"draftPosition" validate:"required,min=1"`
}

type createPickRequest struct {
	RoundNo    int    `json:"roundNo" validate:"required,min=1"`
	OverallNo  int    `json:"overallNo" validate:"required,min=1"`
	TeamSlotID int    `json:"teamSlotId" validate:"required,min=1"`
	PlayerID   string `json:"playerId" validate:"required"`
}

type tierOverrideRequest struct {
	Tier *int `json:"tier" validate:"omitempty,min=1,max=20"`
}

type addNoteRequest struct {
	PlayerID   string `json:"playerId" validate:"required"`
	TeamSlotID *int   `json:"teamSlotId" validate:"omitempty,min=1"`
	Text       string `json:"text" validate:"required,max=2000"`
}

type teamSlotDTO struct {
	SlotID        int    `json:"slotId"`
	TeamName      string `json:"teamName"`
	DraftPosition int    `json:"draftPosition"`
}

type pickDTO struct {
	ID         int64  `json:"id"`
	RoundNo    int    `json:"roundNo"`
	OverallNo  int    `json:"overallNo"`
	TeamSlotID int    `json:"teamSlotId"`
	PlayerID   string `json:"playerId"`
}

type noteDTO struct {
	ID         int64  `json:"id"`
	PlayerID   string `json:"playerId"`
	TeamSlotID *int   `json:"teamSlotId,omitempty"`
	Text       string `json:"text"`
	TS         string `json:"ts"`
}

type suggestionsDTO struct {
	Top  []playerDTO `json:"top"`
	Next []playerDTO `json:"next"`
}

func teamSlotToDTO(ctx context.Context, v draft.TeamSlot) teamSlotDTO {
	ctx, span := startSpan(ctx, "httpapi.teamSlotToDTO")
	defer span.End()

	return teamSlotDTO{
		SlotID:        v.SlotID,
		TeamName:      v.TeamName,
		DraftPosition: v.DraftPosition,
	}
}

func pickToDTO(ctx context.Context, v draft.Pick) pickDTO {
	ctx, span := startSpan(ctx, "httpapi.pickToDTO")
	defer span.End()

	return pickDTO{
		ID:         v.ID,
		RoundNo:    v.RoundNo,
		OverallNo:  v.OverallNo,
		TeamSlotID: v.TeamSlotID,
		PlayerID:   v.PlayerID,
	}
}

func noteToDTO(ctx context.Context, v draft.Note) noteDTO {
	ctx, span := startSpan(ctx, "httpapi.noteToDTO")
	defer span.End()

	return noteDTO{
		ID:         v.ID,
		PlayerID:   v.PlayerID,
		TeamSlotID: v.TeamSlotID,
		Text:       v.Text,
		TS:         v.TS.UTC().Format(time.RFC3339),
	}
}

func playersToDTOs(ctx context.Context, players []player.Player) []playerDTO {
	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}
	return items
}
