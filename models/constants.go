package models

// Interaction kinds
const (
	InteractionKindLike = "like"
	InteractionKindSkip = "skip"
)
