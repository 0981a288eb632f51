package models

// Message belongs to exactly one match. Messages are append-only; the createdAt
// sort key keeps a thread ordered by timestamp.
type Message struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`     // Partition Key
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"` // Sort Key
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
