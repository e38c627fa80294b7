package challenges

import (
	"testing"

	"github.com/julianstephens/thrive/internal/models"
)

func TestCatalog(t *testing.T) {
	got := Catalog()
	wantIDs := []string{HydrationID, MorningRoutineID, MindfulnessID, MovementID}
	if len(got) != len(wantIDs) {
		t.Fatalf("Catalog() has %d entries, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("Catalog()[%d].ID = %s, want %s", i, got[i].ID, id)
		}
		if got[i].Duration <= 0 {
			t.Errorf("%s has non-positive duration", id)
		}
	}

	// Callers get a copy.
	got[0].Title = "changed"
	if c, _ := ByID(HydrationID); c.Title == "changed" {
		t.Error("Catalog() exposed internal storage")
	}
}

func TestByID(t *testing.T) {
	c, ok := ByID(MorningRoutineID)
	if !ok {
		t.Fatal("ByID(morning routine) not found")
	}
	if c.Duration != 30 || c.Category != models.ChallengeProductivity {
		t.Errorf("unexpected challenge %+v", c)
	}
	if _, ok := ByID("nope"); ok {
		t.Error("ByID(nope) should not be found")
	}
}

func TestDifficultyColor(t *testing.T) {
	seen := map[string]models.Difficulty{}
	for _, d := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		color := DifficultyColor(d)
		if other, dup := seen[color]; dup {
			t.Errorf("%s and %s share color %s", d, other, color)
		}
		seen[color] = d
	}
	if DifficultyColor("unknown") != "245" {
		t.Error("unknown difficulty should fall back to gray")
	}
}

func TestCategoryIcon(t *testing.T) {
	tests := map[models.ChallengeCategory]string{
		models.ChallengeHydration:    "💧",
		models.ChallengeExercise:     "🏃",
		models.ChallengeMindfulness:  "🧘",
		models.ChallengeProductivity: "⚡",
		"other":                      "🎯",
	}
	for cat, want := range tests {
		if got := CategoryIcon(cat); got != want {
			t.Errorf("CategoryIcon(%s) = %s, want %s", cat, got, want)
		}
	}
}
