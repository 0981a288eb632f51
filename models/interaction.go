package models

// Interaction is a directed, timestamped swipe edge from actor to target.
// An edge is written once and never mutated afterwards.
type Interaction struct {
	ActorID   string `dynamodbav:"actorId" json:"actorId"`   // Partition Key
	TargetID  string `dynamodbav:"targetId" json:"targetId"` // Sort Key
	Kind      string `dynamodbav:"kind" json:"kind"`         // like, skip
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// InteractionsTable is the DynamoDB table name for swipe edges
const InteractionsTable = "Interactions"
