package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avelent/draftday/internal/domain/draft"
)

type DraftRepository struct {
	mu       sync.Mutex
	slots    map[int]draft.TeamSlot
	picks    map[int64]draft.Pick
	notes    []draft.Note
	nextPick int64
	nextNote int64
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{
		slots: make(map[int]draft.TeamSlot),
		picks: make(map[int64]draft.Pick),
	}
}

func (r *DraftRepository) UpsertTeamSlot(_ context.Context, slot draft.TeamSlot) (draft.TeamSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot.SlotID] = slot
	return slot, nil
}

func (r *DraftRepository) ListTeamSlots(_ context.Context) ([]draft.TeamSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]draft.TeamSlot, 0, len(r.slots))
	for _, slot := range r.slots {
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotID < out[j].SlotID })
	return out, nil
}

func (r *DraftRepository) GetTeamSlot(_ context.Context, slotID int) (*draft.TeamSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (r *DraftRepository) CreatePick(_ context.Context, pick draft.Pick) (draft.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextPick++
	pick.ID = r.nextPick
	r.picks[pick.ID] = pick
	return pick, nil
}

func (r *DraftRepository) ListPicks(_ context.Context) ([]draft.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]draft.Pick, 0, len(r.picks))
	for _, pick := range r.picks {
		out = append(out, pick)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OverallNo < out[j].OverallNo })
	return out, nil
}

func (r *DraftRepository) GetPickByOverall(_ context.Context, overallNo int) (*draft.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pick := range r.picks {
		if pick.OverallNo == overallNo {
			p := pick
			return &p, nil
		}
	}
	return nil, nil
}

func (r *DraftRepository) DeletePick(_ context.Context, pickID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.picks[pickID]; !ok {
		return false, nil
	}
	delete(r.picks, pickID)
	return true, nil
}

func (r *DraftRepository) ListPickedPlayerIDs(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.picks))
	for _, pick := range r.picks {
		out = append(out, pick.PlayerID)
	}
	sort.Strings(out)
	return out, nil
}

func (r *DraftRepository) AddNote(_ context.Context, note draft.Note) (draft.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextNote++
	note.ID = r.nextNote
	if note.TS.IsZero() {
		note.TS = time.Now().UTC()
	}
	r.notes = append(r.notes, note)
	return note, nil
}

func (r *DraftRepository) ListNotes(_ context.Context, playerID string, teamSlotID *int) ([]draft.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]draft.Note, 0, len(r.notes))
	for _, note := range r.notes {
		if playerID != "" && note.PlayerID != playerID {
			continue
		}
		if teamSlotID != nil && (note.TeamSlotID == nil || *note.TeamSlotID != *teamSlotID) {
			continue
		}
		out = append(out, note)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TS.After(out[j].TS) })
	return out, nil
}
