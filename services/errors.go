package services

import "errors"

// Sentinel errors surfaced by the engine. Controllers map these onto HTTP
// status codes with errors.Is; anything else is a collaborator failure and is
// propagated unchanged.
var (
	// ErrNotFound means a referenced profile or match does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyRecorded means the directed swipe edge already exists. The
	// existing edge is left untouched; callers treat this as "decision
	// already made", not a hard failure.
	ErrAlreadyRecorded = errors.New("interaction already recorded")

	// ErrNotParticipant means the sender is not one of the two match
	// participants.
	ErrNotParticipant = errors.New("sender is not a participant of this match")

	// ErrInvalidPreference means the preference values are malformed and were
	// rejected before anything was persisted.
	ErrInvalidPreference = errors.New("invalid preference values")
)
