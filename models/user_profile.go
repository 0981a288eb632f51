package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID       string `dynamodbav:"userId" json:"userId"`
	FirstName    string `dynamodbav:"firstName" json:"firstName"`
	LastName     string `dynamodbav:"lastName" json:"lastName"`
	Age          int    `dynamodbav:"age" json:"age"`
	Course       string `dynamodbav:"course" json:"course"`
	Gender       string `dynamodbav:"gender" json:"gender"`
	Bio          string `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Hobbies      string `dynamodbav:"hobbies,omitempty" json:"hobbies,omitempty"`
	ProfileImage string `dynamodbav:"profileImage,omitempty" json:"profileImage,omitempty"`
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
