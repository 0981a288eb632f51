package services

import (
	"context"
	"sort"
	"strings"

	"mingle_server/models"
)

type FeedService struct {
	Profiles     *UserProfileService
	Preferences  *PreferenceService
	Interactions *InteractionService
}

// Eligible reports whether a candidate profile passes the viewer's preference
// filter. Age bounds are inclusive; gender and course comparisons are
// case-insensitive; an empty course preference means no constraint.
func Eligible(candidate models.UserProfile, prefs models.Preferences) bool {
	if candidate.Age < prefs.MinAge || candidate.Age > prefs.MaxAge {
		return false
	}
	if !strings.EqualFold(prefs.GenderPreference, models.GenderAny) &&
		!strings.EqualFold(prefs.GenderPreference, candidate.Gender) {
		return false
	}
	if prefs.CoursePreference != "" && !strings.EqualFold(prefs.CoursePreference, candidate.Course) {
		return false
	}
	return true
}

// BuildQueue produces a fresh candidate queue for the viewer: every profile the
// viewer has not yet decided on and that passes their preference filter. Any
// candidate with an existing edge is excluded for good, whether it was a like
// or a skip. The exclusion set comes from a single query over the viewer's
// edges rather than one lookup per candidate.
//
// An empty queue is a normal terminal state. The engine keeps no cursor; the
// caller walks the slice and re-invokes BuildQueue to refresh.
func (fs *FeedService) BuildQueue(ctx context.Context, viewerID string) ([]string, error) {
	if _, err := fs.Profiles.GetUserProfile(ctx, viewerID); err != nil {
		return nil, err
	}

	prefs, err := fs.Preferences.GetPreferences(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	interactions, err := fs.Interactions.ListByActor(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	decided := make(map[string]struct{}, len(interactions))
	for _, interaction := range interactions {
		decided[interaction.TargetID] = struct{}{}
	}

	candidates, err := fs.Profiles.GetAllProfilesExcept(ctx, viewerID, decided)
	if err != nil {
		return nil, err
	}

	var eligible []models.UserProfile
	for _, candidate := range candidates {
		if Eligible(candidate, prefs) {
			eligible = append(eligible, candidate)
		}
	}

	// Scan order is not stable across calls; sort so one build is deterministic.
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].CreatedAt != eligible[j].CreatedAt {
			return eligible[i].CreatedAt < eligible[j].CreatedAt
		}
		return eligible[i].UserID < eligible[j].UserID
	})

	queue := make([]string, 0, len(eligible))
	for _, candidate := range eligible {
		queue = append(queue, candidate.UserID)
	}
	return queue, nil
}
