package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/models"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name       string
		value, max int
		wantFilled int
	}{
		{"empty", 0, 100, 0},
		{"half", 50, 100, 5},
		{"full", 25, 25, 10},
		{"over max", 40, 25, 10},
		{"negative", -5, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bar(tt.value, tt.max, 10)
			if n := strings.Count(got, "█"); n != tt.wantFilled {
				t.Errorf("filled = %d, want %d (%q)", n, tt.wantFilled, got)
			}
			if n := strings.Count(got, "█") + strings.Count(got, "░"); n != 10 {
				t.Errorf("width = %d, want 10", n)
			}
		})
	}

	if got := Bar(5, 0, 10); got != "" {
		t.Errorf("zero max should render nothing, got %q", got)
	}
}

func TestScore_TipsOnlyBelowMax(t *testing.T) {
	var buf bytes.Buffer
	Score(&buf, models.ScoreData{
		Total: 80,
		Level: models.LevelAdvanced,
		Breakdown: models.Breakdown{
			Sleep: 25, Exercise: 20, Nutrition: 25, MentalHealth: 5, Productivity: 10,
		},
	})
	out := buf.String()

	if !strings.Contains(out, "80") || !strings.Contains(out, "Advanced") {
		t.Errorf("missing total or level:\n%s", out)
	}
	if n := strings.Count(out, "Tip:"); n != 2 {
		t.Errorf("got %d tips, want 2:\n%s", n, out)
	}
}

func TestLevelLabel(t *testing.T) {
	if got := LevelLabel(models.LevelExpert); got != "Expert" {
		t.Errorf("LevelLabel = %q", got)
	}
	if got := LevelLabel(""); got != "" {
		t.Errorf("LevelLabel(empty) = %q", got)
	}
}

func TestDays_WrapsWeekly(t *testing.T) {
	days := make([]challenges.DayStatus, 10)
	for i := range days {
		days[i] = challenges.DayFuture
	}
	days[0] = challenges.DayCompleted

	out := Days(days)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one line break for 10 days:\n%s", out)
	}
	if !strings.HasPrefix(out, "■") {
		t.Errorf("expected completed cell first, got %q", out)
	}
}

func TestSince(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{15 * time.Minute, "15m ago"},
		{5 * time.Hour, "5h ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		if got := Since(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("Since(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestBadgeGrid(t *testing.T) {
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	bs := []models.Badge{
		{ID: "a", Title: "Alpha", Icon: "A", UnlockedAt: &at},
		{ID: "b", Title: "Beta"},
	}
	out := BadgeGrid(bs, 3)
	if !strings.Contains(out, "Alpha") || !strings.Contains(out, "🔒 Beta") {
		t.Errorf("unexpected grid:\n%s", out)
	}
	if !strings.Contains(out, "2024-05-01") {
		t.Errorf("missing unlock date:\n%s", out)
	}
}
