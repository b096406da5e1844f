package draft

import "context"

// Repository describes draft-board persistence needs from use cases.
type Repository interface {
	UpsertTeamSlot(ctx context.Context, slot TeamSlot) (TeamSlot, error)
	ListTeamSlots(ctx context.Context) ([]TeamSlot, error)
	GetTeamSlot(ctx context.Context, slotID int) (*TeamSlot, error)

	CreatePick(ctx context.Context, pick Pick) (Pick, error)
	ListPicks(ctx context.Context) ([]Pick, error)
	GetPickByOverall(ctx context.Context, overallNo int) (*Pick, error)
	DeletePick(ctx context.Context, pickID int64) (bool, error)
	ListPickedPlayerIDs(ctx context.Context) ([]string, error)

	AddNote(ctx context.Context, note Note) (Note, error)
	ListNotes(ctx context.Context, playerID string, teamSlotID *int) ([]Note, error)
}
