package badges

import (
	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/models"
)

const (
	FirstWeekID       = "first-week"
	HydrationMasterID = "hydration-master"
	EarlyBirdID       = "early-bird"
	ZenMasterID       = "zen-master"
	ActiveLifestyleID = "active-lifestyle"
	ScoreExplorerID   = "score-explorer"
	WellnessWarriorID = "wellness-warrior"
	PerfectBalanceID  = "perfect-balance"
	StreakStarterID   = "streak-starter"
	StreakChampionID  = "streak-champion"
)

var catalog = []models.Badge{
	{ID: FirstWeekID, Title: "First Week", Description: "Completed your first week of tracking", Icon: "🌟", Category: models.BadgeMilestone},
	{ID: HydrationMasterID, Title: "Hydration Master", Description: "Completed the 7-Day Hydration Challenge", Icon: "💧", Category: models.BadgeChallenge},
	{ID: EarlyBirdID, Title: "Early Bird", Description: "Completed the 30-Day Morning Routine Challenge", Icon: "🌅", Category: models.BadgeChallenge},
	{ID: ZenMasterID, Title: "Zen Master", Description: "Completed the 14-Day Mindfulness Challenge", Icon: "🧘", Category: models.BadgeChallenge},
	{ID: ActiveLifestyleID, Title: "Active Lifestyle", Description: "Completed the 21-Day Movement Challenge", Icon: "🏃", Category: models.BadgeChallenge},
	{ID: ScoreExplorerID, Title: "Score Explorer", Description: "Reached a wellness score of 50+", Icon: "🎯", Category: models.BadgeScore},
	{ID: WellnessWarriorID, Title: "Wellness Warrior", Description: "Reached a wellness score of 70+", Icon: "⚔️", Category: models.BadgeScore},
	{ID: PerfectBalanceID, Title: "Perfect Balance", Description: "Reached a wellness score of 90+", Icon: "⚖️", Category: models.BadgeScore},
	{ID: StreakStarterID, Title: "Streak Starter", Description: "Maintained a 7-day streak", Icon: "🔥", Category: models.BadgeStreak},
	{ID: StreakChampionID, Title: "Streak Champion", Description: "Maintained a 30-day streak", Icon: "🏆", Category: models.BadgeStreak},
}

// challengeBadges maps each catalog challenge to the badge it awards
var challengeBadges = map[string]string{
	challenges.HydrationID:      HydrationMasterID,
	challenges.MorningRoutineID: EarlyBirdID,
	challenges.MindfulnessID:    ZenMasterID,
	challenges.MovementID:       ActiveLifestyleID,
}

// Catalog returns a copy of every badge in display order
func Catalog() []models.Badge {
	out := make([]models.Badge, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog badge. The returned badge is locked (UnlockedAt is nil).
func ByID(id string) (models.Badge, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return models.Badge{}, false
}

// ChallengeBadge returns the badge id awarded for completing a challenge
func ChallengeBadge(challengeID string) (string, bool) {
	id, ok := challengeBadges[challengeID]
	return id, ok
}
