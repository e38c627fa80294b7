package challenge

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/storage"
	"github.com/julianstephens/thrive/internal/tracker"
)

func newTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	ctx := cli.NewContext(storage.NewMemoryStore(), t.TempDir())
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.In = strings.NewReader("")
	return ctx, out
}

func TestChallengeListCmd(t *testing.T) {
	tests := []struct {
		name string
		cmd  ChallengeListCmd
		want []string
		skip []string
	}{
		{"all", ChallengeListCmd{}, []string{challenges.HydrationID, challenges.MorningRoutineID, challenges.MindfulnessID, challenges.MovementID}, nil},
		{"by difficulty", ChallengeListCmd{Difficulty: "Easy"}, []string{challenges.HydrationID}, []string{challenges.MorningRoutineID}},
		{"joined none", ChallengeListCmd{Joined: true}, []string{"No challenges match"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newTestContext(t)
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q:\n%s", w, out.String())
				}
			}
			for _, s := range tt.skip {
				if strings.Contains(out.String(), s) {
					t.Errorf("output should not contain %q:\n%s", s, out.String())
				}
			}
		})
	}
}

func TestChallengeJoinAndShow(t *testing.T) {
	ctx, out := newTestContext(t)

	if err := (&ChallengeShowCmd{ID: challenges.HydrationID}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Join with: thrive challenge join "+challenges.HydrationID) {
		t.Errorf("expected join hint:\n%s", out.String())
	}

	out.Reset()
	if err := (&ChallengeJoinCmd{ID: challenges.HydrationID}).Run(ctx); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if !strings.Contains(out.String(), "Joined 7-Day Hydration Challenge") {
		t.Errorf("unexpected output: %s", out.String())
	}

	if err := (&ChallengeJoinCmd{ID: challenges.HydrationID}).Run(ctx); !errors.Is(err, tracker.ErrAlreadyJoined) {
		t.Errorf("second join error = %v, want ErrAlreadyJoined", err)
	}
	if err := (&ChallengeJoinCmd{ID: "juggling-3-day"}).Run(ctx); !errors.Is(err, tracker.ErrUnknownChallenge) {
		t.Errorf("unknown join error = %v, want ErrUnknownChallenge", err)
	}

	out.Reset()
	if err := (&ChallengeShowCmd{ID: challenges.HydrationID}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Day 1 of 7") {
		t.Errorf("expected progress line:\n%s", out.String())
	}

	out.Reset()
	if err := (&ChallengeListCmd{Joined: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), challenges.HydrationID) || strings.Contains(out.String(), challenges.MovementID) {
		t.Errorf("joined filter output:\n%s", out.String())
	}
}

func TestChallengeCheckinCmd(t *testing.T) {
	ctx, out := newTestContext(t)

	if err := (&ChallengeCheckinCmd{ID: challenges.HydrationID}).Run(ctx); !errors.Is(err, tracker.ErrNotJoined) {
		t.Fatalf("checkin before join error = %v, want ErrNotJoined", err)
	}
	if err := (&ChallengeJoinCmd{ID: challenges.HydrationID}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := (&ChallengeCheckinCmd{ID: challenges.HydrationID}).Run(ctx); err != nil {
		t.Fatalf("checkin failed: %v", err)
	}
	if !strings.Contains(out.String(), "Day 1 of 7-Day Hydration Challenge marked completed") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	if err := (&ChallengeCheckinCmd{ID: challenges.HydrationID, Day: 3, Missed: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Day 3 of 7-Day Hydration Challenge marked missed") {
		t.Errorf("unexpected output: %s", out.String())
	}

	if err := (&ChallengeCheckinCmd{ID: challenges.HydrationID, Day: 8}).Run(ctx); !errors.Is(err, tracker.ErrDayOutOfRange) {
		t.Errorf("day 8 error = %v, want ErrDayOutOfRange", err)
	}
	if err := (&ChallengeCheckinCmd{ID: challenges.HydrationID, Day: -2}).Run(ctx); err == nil {
		t.Error("expected error for negative day")
	}
}

func TestChallengeCheckinCmd_Completes(t *testing.T) {
	ctx, out := newTestContext(t)
	if err := (&ChallengeJoinCmd{ID: challenges.HydrationID}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	for day := 1; day <= 7; day++ {
		out.Reset()
		if err := (&ChallengeCheckinCmd{ID: challenges.HydrationID, Day: day}).Run(ctx); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
	}

	output := out.String()
	for _, want := range []string{"Challenge complete!", "Hydration Master", "Streak Starter"} {
		if !strings.Contains(output, want) {
			t.Errorf("final checkin output missing %q:\n%s", want, output)
		}
	}
}

func TestChallengeLeaveCmd(t *testing.T) {
	ctx, out := newTestContext(t)
	if err := (&ChallengeJoinCmd{ID: challenges.MindfulnessID}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	ctx.In = strings.NewReader("n\n")
	if err := (&ChallengeLeaveCmd{ID: challenges.MindfulnessID}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Cancelled.") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if len(ctx.Tracker.Enrollments()) != 1 {
		t.Fatal("declined leave should keep the enrollment")
	}

	ctx.In = strings.NewReader("yes\n")
	if err := (&ChallengeLeaveCmd{ID: challenges.MindfulnessID}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.Tracker.Enrollments()) != 0 {
		t.Error("enrollment should be removed")
	}

	if err := (&ChallengeLeaveCmd{ID: challenges.MindfulnessID, Yes: true}).Run(ctx); !errors.Is(err, tracker.ErrNotJoined) {
		t.Errorf("leave twice error = %v, want ErrNotJoined", err)
	}
}
