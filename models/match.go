package models

// Match represents two users who have mutually liked each other. The record is
// keyed by the deterministic pair key so only one Match can ever exist per pair;
// the last-message fields are the only mutable part.
type Match struct {
	PairKey       string `dynamodbav:"pairKey" json:"-"` // Partition Key
	MatchID       string `dynamodbav:"matchId" json:"matchId"`
	UserA         string `dynamodbav:"userA" json:"userA"`
	UserB         string `dynamodbav:"userB" json:"userB"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
	LastMessage   string `dynamodbav:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageAt string `dynamodbav:"lastMessageAt,omitempty" json:"lastMessageAt,omitempty"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// MatchIDIndex is the GSI used to look a match up by its id
const MatchIDIndex = "matchId-index"

// PairKey builds the order-independent key for two user ids.
func PairKey(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return userA + "#" + userB
}

// HasParticipant reports whether userID is one of the two match participants.
func (m Match) HasParticipant(userID string) bool {
	return m.UserA == userID || m.UserB == userID
}

// OtherUser returns the counterpart of userID in the match, or "" if userID is
// not a participant.
func (m Match) OtherUser(userID string) string {
	switch userID {
	case m.UserA:
		return m.UserB
	case m.UserB:
		return m.UserA
	}
	return ""
}

// UserMatch is a per-participant index entry so each user can enumerate their
// own matches without scanning the Matches table.
type UserMatch struct {
	UserID  string `dynamodbav:"userId" json:"userId"`   // Partition Key
	MatchID string `dynamodbav:"matchId" json:"matchId"` // Sort Key
}

// UserMatchesTable is the DynamoDB table name for the per-user match index
const UserMatchesTable = "UserMatches"
