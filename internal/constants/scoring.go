package constants

const (
	// Category maxima. They sum to 100.
	MaxSleepScore        = 25
	MaxExerciseScore     = 25
	MaxNutritionScore    = 25
	MaxMentalHealthScore = 15
	MaxProductivityScore = 10

	// Level thresholds on the rounded total, inclusive lower bounds
	LevelExpertMin       = 85
	LevelAdvancedMin     = 70
	LevelIntermediateMin = 55

	// ChallengeCompletionRatio is the share of a challenge's duration that must be
	// completed for the challenge to count as done.
	ChallengeCompletionRatio = 0.8

	// Badge thresholds
	ScorePerfectBalanceMin = 90
	ScoreWarriorMin        = 70
	ScoreExplorerMin       = 50
	StreakChampionMin      = 30
	StreakStarterMin       = 7

	// FirstWeekDays is the tracking span required for the first-week milestone
	FirstWeekDays = 7
)

func init() {
	if MaxSleepScore+MaxExerciseScore+MaxNutritionScore+MaxMentalHealthScore+MaxProductivityScore != 100 {
		panic("category maxima must sum to 100")
	}
}
