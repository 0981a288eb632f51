package models

// Preferences holds a viewer's matching preferences
type Preferences struct {
	UserID           string `dynamodbav:"userId" json:"userId"`
	MinAge           int    `dynamodbav:"minAge" json:"minAge"`
	MaxAge           int    `dynamodbav:"maxAge" json:"maxAge"`
	GenderPreference string `dynamodbav:"genderPreference" json:"genderPreference"`
	CoursePreference string `dynamodbav:"coursePreference,omitempty" json:"coursePreference,omitempty"`
}

// UserPreferencesTable is the DynamoDB table name for matching preferences
const UserPreferencesTable = "UserPreferences"

// Preference defaults and allowed bounds
const (
	DefaultMinAge = 18
	DefaultMaxAge = 30
	GenderAny     = "Any"

	MinAllowedAge = 18
	MaxAllowedAge = 99
)

// DefaultPreferences returns the preferences used for a viewer who never saved any
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:           userID,
		MinAge:           DefaultMinAge,
		MaxAge:           DefaultMaxAge,
		GenderPreference: GenderAny,
		CoursePreference: "",
	}
}
