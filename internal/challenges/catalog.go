package challenges

import "github.com/julianstephens/thrive/internal/models"

const (
	HydrationID      = "hydration-7-day"
	MorningRoutineID = "morning-routine-30-day"
	MindfulnessID    = "mindfulness-14-day"
	MovementID       = "movement-21-day"
)

var catalog = []models.Challenge{
	{
		ID:           HydrationID,
		Title:        "7-Day Hydration Challenge",
		Description:  "Drink 8 glasses of water every day for a week to build a healthy hydration habit.",
		Duration:     7,
		Difficulty:   models.DifficultyEasy,
		Category:     models.ChallengeHydration,
		DailyGoal:    "Drink 8 glasses of water",
		Reward:       "Hydration Master badge + 50 bonus points",
		Participants: 1247,
	},
	{
		ID:           MorningRoutineID,
		Title:        "30-Day Morning Routine",
		Description:  "Complete your morning routine 6 out of 7 days each week for a month.",
		Duration:     30,
		Difficulty:   models.DifficultyMedium,
		Category:     models.ChallengeProductivity,
		DailyGoal:    "Complete morning routine before 9 AM",
		Reward:       "Early Bird badge + 100 bonus points",
		Participants: 892,
	},
	{
		ID:           MindfulnessID,
		Title:        "14-Day Mindfulness Journey",
		Description:  "Practice mindfulness meditation for at least 10 minutes daily.",
		Duration:     14,
		Difficulty:   models.DifficultyEasy,
		Category:     models.ChallengeMindfulness,
		DailyGoal:    "Meditate for 10+ minutes",
		Reward:       "Zen Master badge + 75 bonus points",
		Participants: 654,
	},
	{
		ID:           MovementID,
		Title:        "21-Day Movement Challenge",
		Description:  "Get your body moving with at least 30 minutes of physical activity daily.",
		Duration:     21,
		Difficulty:   models.DifficultyMedium,
		Category:     models.ChallengeExercise,
		DailyGoal:    "30 minutes of physical activity",
		Reward:       "Active Lifestyle badge + 90 bonus points",
		Participants: 1156,
	},
}

// Catalog returns a copy of the available challenges in display order
func Catalog() []models.Challenge {
	out := make([]models.Challenge, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog challenge
func ByID(id string) (models.Challenge, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return models.Challenge{}, false
}

// DifficultyColor is the ANSI 256 color for a difficulty label
func DifficultyColor(d models.Difficulty) string {
	switch d {
	case models.DifficultyEasy:
		return "34"
	case models.DifficultyMedium:
		return "214"
	case models.DifficultyHard:
		return "160"
	default:
		return "245"
	}
}

// CategoryIcon returns the icon shown next to a challenge category
func CategoryIcon(c models.ChallengeCategory) string {
	switch c {
	case models.ChallengeHydration:
		return "💧"
	case models.ChallengeExercise:
		return "🏃"
	case models.ChallengeMindfulness:
		return "🧘"
	case models.ChallengeProductivity:
		return "⚡"
	default:
		return "🎯"
	}
}
