package challenge

import (
	"fmt"
	"strings"

	"github.com/julianstephens/thrive/internal/challenges"
	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/cli/render"
	"github.com/julianstephens/thrive/internal/models"
)

type ChallengeCmd struct {
	List    ChallengeListCmd    `cmd:"" help:"List available challenges." default:"1"`
	Show    ChallengeShowCmd    `cmd:"" help:"Show a challenge and your progress."`
	Join    ChallengeJoinCmd    `cmd:"" help:"Join a challenge."`
	Checkin ChallengeCheckinCmd `cmd:"" help:"Record a challenge day."`
	Leave   ChallengeLeaveCmd   `cmd:"" help:"Leave a challenge and discard its progress."`
}

type ChallengeListCmd struct {
	Difficulty string `help:"Only show challenges of this difficulty (easy, medium, hard)."`
	Category   string `help:"Only show challenges in this category."`
	Joined     bool   `help:"Only show challenges you have joined."`
}

func (c *ChallengeListCmd) Run(ctx *cli.Context) error {
	listings := ctx.Tracker.Challenges(models.Difficulty(strings.ToLower(c.Difficulty)), models.ChallengeCategory(strings.ToLower(c.Category)))

	shown := 0
	for _, l := range listings {
		if c.Joined && l.Enrollment == nil {
			continue
		}
		if shown > 0 {
			fmt.Fprintln(ctx.Out)
		}
		render.Challenge(ctx.Out, l.Challenge, l.Enrollment)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(ctx.Out, "No challenges match.")
	}
	return nil
}

type ChallengeShowCmd struct {
	ID string `arg:"" help:"Challenge id."`
}

func (c *ChallengeShowCmd) Run(ctx *cli.Context) error {
	d, err := ctx.Tracker.Challenge(c.ID)
	if err != nil {
		return err
	}

	render.Challenge(ctx.Out, d.Challenge, d.Enrollment)
	fmt.Fprintf(ctx.Out, "\n%s\n", d.Challenge.Description)
	fmt.Fprintf(ctx.Out, "Reward: %s\n\n", d.Challenge.Reward)

	if d.Enrollment == nil {
		fmt.Fprintf(ctx.Out, "Join with: thrive challenge join %s\n", d.Challenge.ID)
		return nil
	}
	fmt.Fprintln(ctx.Out, render.Days(d.Days))
	fmt.Fprintf(ctx.Out, "\nDay %d of %d · %d days completed · %d%%\n", d.CurrentDay, d.Challenge.Duration, d.Completed, d.Percent)
	fmt.Fprintf(ctx.Out, "Started %s\n", d.Enrollment.StartDate.Local().Format("2006-01-02"))
	return nil
}

type ChallengeJoinCmd struct {
	ID string `arg:"" help:"Challenge id."`
}

func (c *ChallengeJoinCmd) Run(ctx *cli.Context) error {
	uc, err := ctx.Tracker.JoinChallenge(c.ID)
	if err != nil {
		return err
	}
	ch, _ := challenges.ByID(uc.ChallengeID)
	fmt.Fprintln(ctx.Out, render.Success("Joined "+ch.Title))
	fmt.Fprintf(ctx.Out, "  Daily goal: %s\n", ch.DailyGoal)
	fmt.Fprintf(ctx.Out, "  Check in with: thrive challenge checkin %s\n", ch.ID)
	return nil
}

type ChallengeCheckinCmd struct {
	ID     string `arg:"" help:"Challenge id."`
	Day    int    `help:"Day to record (1-based). Defaults to the next unrecorded day." default:"0"`
	Missed bool   `help:"Record the day as missed instead of completed."`
}

func (c *ChallengeCheckinCmd) Run(ctx *cli.Context) error {
	day := c.Day - 1 // -1 selects the next day
	if c.Day < 0 {
		return fmt.Errorf("day must be 1 or greater")
	}

	res, err := ctx.Tracker.CheckIn(c.ID, day, !c.Missed)
	if err != nil {
		return err
	}

	verb := "completed"
	if c.Missed {
		verb = "missed"
	}
	fmt.Fprintln(ctx.Out, render.Success(fmt.Sprintf("Day %d of %s marked %s", res.Day+1, res.Challenge.Title, verb)))
	fmt.Fprintf(ctx.Out, "  Streak: %d · Progress: %d%%\n", res.Enrollment.Streak, challenges.ProgressPercent(res.Enrollment))
	if res.JustCompleted {
		fmt.Fprintln(ctx.Out)
		fmt.Fprintln(ctx.Out, render.Title("🏁 Challenge complete! "+res.Challenge.Reward))
	}
	if len(res.NewBadges) > 0 {
		fmt.Fprintln(ctx.Out)
		fmt.Fprintln(ctx.Out, render.Title("🎉 New badges unlocked!"))
		for _, b := range res.NewBadges {
			fmt.Fprintf(ctx.Out, "  %s\n", render.BadgeLine(b))
		}
	}
	return nil
}

type ChallengeLeaveCmd struct {
	ID  string `arg:"" help:"Challenge id."`
	Yes bool   `short:"y" help:"Leave without asking."`
}

func (c *ChallengeLeaveCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Leave %s and discard its progress?", c.ID))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(ctx.Out, "Cancelled.")
			return nil
		}
	}
	if err := ctx.Tracker.LeaveChallenge(c.ID); err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, render.Success("Left "+c.ID))
	return nil
}
