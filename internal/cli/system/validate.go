package system

import (
	"fmt"

	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/storage"
	"github.com/julianstephens/thrive/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Clamp out-of-range habit values and rescore them."`
}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	repo := ctx.Tracker.Repository()

	fmt.Fprintln(ctx.Out, "Validating habits, challenges and profile...")
	result := validateStoredData(repo)

	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, result.FormatReport())

	if cmd.Fix {
		h, ok := repo.LoadHabits()
		if !ok {
			return nil
		}
		fixed := validation.ClampHabits(h)
		if fixed == h {
			fmt.Fprintln(ctx.Out, "Habits are within range, nothing to fix.")
			return nil
		}
		res, err := ctx.Tracker.SubmitHabits(fixed)
		if err != nil {
			return fmt.Errorf("failed to save clamped habits: %w", err)
		}
		fmt.Fprintf(ctx.Out, "Clamped habits saved. New score: %d\n", res.Score.Total)
	}

	// Issues are reported, not returned
	return nil
}

// validateStoredData checks every persisted record that is present.
func validateStoredData(repo *storage.Repository) validation.Result {
	v := validation.New()
	var result validation.Result
	if h, ok := repo.LoadHabits(); ok {
		result.Merge(v.ValidateHabits(h))
	}
	if ucs, ok := repo.LoadUserChallenges(); ok {
		result.Merge(v.ValidateUserChallenges(ucs))
	}
	if p, ok := repo.LoadProfile(); ok {
		result.Merge(v.ValidateProfile(p))
	}
	return result
}
