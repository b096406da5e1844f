package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/avelent/draftday/internal/domain/importrun"
	"github.com/avelent/draftday/internal/usecase"
)

func (h *Handler) RunCatalogImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunCatalogImport")
	defer span.End()

	req, err := decodeAdminImportRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.catalogService.ImportPlayers(ctx, h.resolveSeason(req.Season))
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunRankingsImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRankingsImport")
	defer span.End()

	req, err := decodeAdminImportRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Location == "" {
		writeError(ctx, w, fmt.Errorf("%w: location is required", usecase.ErrInvalidInput))
		return
	}

	result := h.rankingsService.ImportAuto(ctx, h.resolveSeason(req.Season), req.Location)
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunADPImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunADPImport")
	defer span.End()

	req, err := decodeAdminImportRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Location == "" {
		writeError(ctx, w, fmt.Errorf("%w: location is required", usecase.ErrInvalidInput))
		return
	}

	result := h.adpService.ImportAuto(ctx, h.resolveSeason(req.Season), req.Location, req.Source)
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunInjuryImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunInjuryImport")
	defer span.End()

	req, err := decodeAdminImportRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.injuryService.ImportInjuries(ctx, h.resolveSeason(req.Season))
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunSeedImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSeedImport")
	defer span.End()

	req, err := decodeAdminImportRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Location == "" {
		writeError(ctx, w, fmt.Errorf("%w: location is required", usecase.ErrInvalidInput))
		return
	}

	result := h.seedService.ImportSeedCSV(ctx, req.Location)
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunDemoImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunDemoImport")
	defer span.End()

	req, err := decodeAdminImportRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result := h.seedService.ImportDemo(ctx, h.resolveSeason(req.Season))
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunFullRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunFullRefresh")
	defer span.End()

	req, err := decodeAdminImportRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.refreshService.RefreshAll(ctx, h.resolveSeason(req.Season))
	if err != nil {
		h.logger.WarnContext(ctx, "full refresh failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, results)
}

func (h *Handler) ListImportRuns(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListImportRuns")
	defer span.End()

	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	runs, err := h.tracker.ListRecentRuns(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list import runs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]importRunDTO, 0, len(runs))
	for _, run := range runs {
		items = append(items, importRunToDTO(ctx, run))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type adminImportRequest struct {
	Season   int    `json:"season"`
	Location string `json:"location"`
	Source   string `json:"source"`
}

type importRunDTO struct {
	ID         int64  `json:"id"`
	SourceID   int64  `json:"sourceId"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
	Success    bool   `json:"success"`
	RowCount   int    `json:"rowCount"`
	ErrorText  string `json:"errorText,omitempty"`
}

// decodeAdminImportRequest tolerates an empty body: every field has a
// server-side default or is validated by the handler that needs it.
func decodeAdminImportRequest(r *http.Request) (adminImportRequest, error) {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req adminImportRequest
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return adminImportRequest{}, nil
		}
		return adminImportRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}

func (h *Handler) resolveSeason(season int) int {
	if season > 0 {
		return season
	}
	return h.defaultSeason
}

func importRunToDTO(ctx context.Context, v importrun.Run) importRunDTO {
	ctx, span := startSpan(ctx, "httpapi.importRunToDTO")
	defer span.End()

	dto := importRunDTO{
		ID:        v.ID,
		SourceID:  v.SourceID,
		StartedAt: v.StartedAt.UTC().Format(time.RFC3339),
		Success:   v.Success,
		RowCount:  v.RowCount,
		ErrorText: v.ErrorText,
	}
	if v.FinishedAt != nil {
		dto.FinishedAt = v.FinishedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
