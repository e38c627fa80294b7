package habits

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/cli/render"
	"github.com/julianstephens/thrive/internal/models"
	"github.com/julianstephens/thrive/internal/tui/forms"
	"github.com/julianstephens/thrive/internal/validation"
)

// runForm is replaced in tests
var runForm = func(f *huh.Form) error { return f.Run() }

type HabitsCmd struct {
	Log  HabitsLogCmd  `cmd:"" help:"Record your current habits and rescore." default:"withargs"`
	Show HabitsShowCmd `cmd:"" help:"Show the stored habits."`
}

type HabitsLogCmd struct {
	Set         map[string]float64 `short:"s" help:"Set a habit value, e.g. --set sleep.hours=7.5 (repeatable)." placeholder:"KEY=VALUE"`
	Quality     string             `help:"Sleep quality: poor, fair, good or excellent."`
	Intensity   string             `help:"Workout intensity: light, moderate or vigorous."`
	Interactive bool               `short:"i" help:"Edit habits in an interactive form."`
	Clamp       bool               `help:"Clamp out-of-range values instead of rejecting them."`
}

func (c *HabitsLogCmd) Run(ctx *cli.Context) error {
	h, _ := ctx.Tracker.Habits()

	if c.Interactive {
		fm := forms.NewHabitFormModel(h)
		if err := runForm(forms.NewHabitForm(fm)); err != nil {
			return err
		}
		edited, err := fm.Habits()
		if err != nil {
			return err
		}
		h = edited
	}

	if err := c.apply(&h); err != nil {
		return err
	}

	if result := validation.New().ValidateHabits(h); result.HasIssues() {
		if !c.Clamp {
			return fmt.Errorf("invalid habits: %s", result.Error())
		}
		h = validation.ClampHabits(h)
	}

	res, err := ctx.Tracker.SubmitHabits(h)
	if err != nil {
		return err
	}

	render.Score(ctx.Out, res.Score)
	if delta := render.ScoreDelta(res.Previous, res.Score); delta != "" {
		fmt.Fprintf(ctx.Out, "\nSince last time: %s\n", delta)
	}
	printNewBadges(ctx, res.NewBadges)
	return nil
}

// apply writes the flag overrides into h.
func (c *HabitsLogCmd) apply(h *models.HabitsData) error {
	keys := make([]string, 0, len(c.Set))
	for k := range c.Set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f, ok := validation.FieldByKey(k)
		if !ok {
			return fmt.Errorf("unknown habit %q, expected one of: %s", k, strings.Join(fieldKeys(), ", "))
		}
		f.Set(h, c.Set[k])
	}

	if c.Quality != "" {
		q, err := models.ParseSleepQuality(c.Quality)
		if err != nil {
			return err
		}
		h.Sleep.Quality = q
	}
	if c.Intensity != "" {
		i, err := models.ParseExerciseIntensity(c.Intensity)
		if err != nil {
			return err
		}
		h.Exercise.Intensity = i
	}
	return nil
}

func fieldKeys() []string {
	keys := make([]string, len(validation.HabitFields))
	for i, f := range validation.HabitFields {
		keys[i] = f.Key
	}
	return keys
}

type HabitsShowCmd struct{}

func (c *HabitsShowCmd) Run(ctx *cli.Context) error {
	h, ok := ctx.Tracker.Habits()
	if !ok {
		fmt.Fprintln(ctx.Out, "No habits logged yet. Showing defaults; run 'thrive habits log' to record yours.")
		fmt.Fprintln(ctx.Out)
	}

	fmt.Fprintf(ctx.Out, "  %-20s %s\n", "Sleep quality", h.Sleep.Quality)
	fmt.Fprintf(ctx.Out, "  %-20s %s\n", "Workout intensity", h.Exercise.Intensity)
	for _, f := range validation.HabitFields {
		fmt.Fprintf(ctx.Out, "  %-20s %g %s  %s\n", f.Label, f.Get(h), f.Unit, render.Muted(f.Key))
	}

	if t, ok := ctx.Tracker.Repository().LastUpdated(); ok {
		fmt.Fprintf(ctx.Out, "\nLast updated %s\n", t.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

type ScoreCmd struct{}

func (c *ScoreCmd) Run(ctx *cli.Context) error {
	score, ok := ctx.Tracker.CurrentScore()
	if !ok {
		fmt.Fprintln(ctx.Out, "No score yet. Run 'thrive habits log' to get started.")
		return nil
	}
	render.Score(ctx.Out, score)
	return nil
}

func printNewBadges(ctx *cli.Context, bs []models.Badge) {
	if len(bs) == 0 {
		return
	}
	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, render.Title("🎉 New badges unlocked!"))
	for _, b := range bs {
		fmt.Fprintf(ctx.Out, "  %s\n", render.BadgeLine(b))
	}
}
