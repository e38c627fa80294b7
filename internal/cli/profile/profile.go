package profile

import (
	"fmt"
	"time"

	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/cli/render"
	"github.com/julianstephens/thrive/internal/constants"
	"github.com/julianstephens/thrive/internal/scoring"
)

type ProfileCmd struct {
	Show   ProfileShowCmd   `cmd:"" help:"Show your profile and stats." default:"1"`
	Rename ProfileRenameCmd `cmd:"" help:"Change your display name."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	st, err := ctx.Tracker.ProfileStats()
	if err != nil {
		return err
	}
	p := st.Profile

	fmt.Fprintln(ctx.Out, render.Title(p.Name))
	fmt.Fprintf(ctx.Out, "Member since %s (%d days)\n\n", p.JoinDate.Local().Format(constants.DateFormat), st.DaysSinceJoin)

	fmt.Fprintf(ctx.Out, "  %-22s %d\n", "Wellness score", p.TotalScore)
	fmt.Fprintf(ctx.Out, "  %-22s %s\n", "Level", render.LevelLabel(scoring.LevelFor(p.TotalScore)))
	fmt.Fprintf(ctx.Out, "  %-22s %d/%d\n", "Badges earned", st.BadgesEarned, st.BadgesTotal)
	fmt.Fprintf(ctx.Out, "  %-22s %d days\n", "Current streak", p.CurrentStreak)
	fmt.Fprintf(ctx.Out, "  %-22s %d days\n", "Longest streak", p.LongestStreak)
	fmt.Fprintf(ctx.Out, "  %-22s %d\n", "Completed challenges", p.CompletedChallenges)

	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, render.Title("Badge collection"))
	for _, cc := range st.ByCategory {
		fmt.Fprintf(ctx.Out, "  %-10s %s %d/%d\n", cc.Category, render.Bar(cc.Unlocked, cc.Total, 10), cc.Unlocked, cc.Total)
	}

	if len(st.History) > 0 {
		fmt.Fprintln(ctx.Out)
		fmt.Fprintln(ctx.Out, render.Title("Recent weeks"))
		for _, l := range st.History {
			fmt.Fprintf(ctx.Out, "  %s  %s %3d\n", l.Week, render.Bar(l.Score, 100, 20), l.Score)
		}
	}
	return nil
}

type ProfileRenameCmd struct {
	Name string `arg:"" help:"New display name."`
}

func (c *ProfileRenameCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Tracker.Rename(c.Name)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, render.Success("Profile renamed to "+p.Name))
	return nil
}

type BadgesCmd struct {
	All bool `short:"a" help:"Include locked badges."`
}

func (c *BadgesCmd) Run(ctx *cli.Context) error {
	st, err := ctx.Tracker.ProfileStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "%s %d/%d\n\n", render.Title("Badges earned:"), st.BadgesEarned, st.BadgesTotal)
	if len(st.Unlocked) == 0 {
		fmt.Fprintln(ctx.Out, "No badges yet. Log your habits and join a challenge to start earning them.")
	} else {
		fmt.Fprintln(ctx.Out, render.BadgeGrid(st.Unlocked, 3))
	}

	if c.All && len(st.Locked) > 0 {
		fmt.Fprintln(ctx.Out)
		fmt.Fprintln(ctx.Out, render.Title("Locked"))
		fmt.Fprintln(ctx.Out, render.BadgeGrid(st.Locked, 3))
	}
	return nil
}

type WeekCmd struct {
	Log     WeekLogCmd     `cmd:"" help:"Snapshot this week's habits, score and challenges."`
	History WeekHistoryCmd `cmd:"" help:"Show recent weekly snapshots." default:"1"`
}

type WeekLogCmd struct {
	Notes string `short:"n" help:"Notes to keep with the snapshot."`
}

func (c *WeekLogCmd) Run(ctx *cli.Context) error {
	res, err := ctx.Tracker.LogWeek(c.Notes)
	if err != nil {
		return err
	}
	verb := "Logged"
	if res.Replaced {
		verb = "Updated"
	}
	fmt.Fprintln(ctx.Out, render.Success(fmt.Sprintf("%s week %s (score %d)", verb, res.Log.Week, res.Log.Score)))
	for _, b := range res.NewBadges {
		fmt.Fprintf(ctx.Out, "🎉 New badge: %s\n", render.BadgeLine(b))
	}
	return nil
}

type WeekHistoryCmd struct {
	Limit int `short:"l" help:"Number of weeks to show (0 for all)." default:"8"`
}

func (c *WeekHistoryCmd) Run(ctx *cli.Context) error {
	logs := ctx.Tracker.History(c.Limit)
	if len(logs) == 0 {
		fmt.Fprintln(ctx.Out, "No weekly logs yet. Run 'thrive week log' to record one.")
		return nil
	}
	for _, l := range logs {
		fmt.Fprintf(ctx.Out, "%s  %s %3d  %d challenge(s)\n", l.Week, render.Bar(l.Score, 100, 20), l.Score, len(l.Challenges))
		if l.Notes != "" {
			fmt.Fprintf(ctx.Out, "         %s\n", render.Muted(l.Notes))
		}
	}
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	d, err := ctx.Tracker.Dashboard()
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Welcome back, %s\n\n", render.Title(d.Profile.Name))

	if d.Score == nil {
		fmt.Fprintln(ctx.Out, "No score yet. Run 'thrive habits log' to get started.")
	} else {
		render.Score(ctx.Out, *d.Score)
	}
	if d.Stale {
		msg := "Your habits haven't been updated in a day. Run 'thrive habits log' to refresh your score."
		if d.LastUpdated != nil {
			msg = fmt.Sprintf("Habits last updated %s. Run 'thrive habits log' to refresh your score.", render.Since(*d.LastUpdated, time.Now()))
		}
		fmt.Fprintf(ctx.Out, "\n%s\n", render.Warning(msg))
	}

	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, render.Title("Active challenges"))
	if len(d.Active) == 0 {
		fmt.Fprintln(ctx.Out, "  None. Browse with 'thrive challenge list'.")
	}
	for _, e := range d.Active {
		uc := e.UserChallenge
		render.Challenge(ctx.Out, e.Challenge, &uc)
	}

	fmt.Fprintln(ctx.Out)
	fmt.Fprintf(ctx.Out, "%s  streak %d · best %d · %d badge(s)\n", render.Title("Recent badges"), d.Profile.CurrentStreak, d.Profile.LongestStreak, len(d.Profile.Badges))
	if len(d.RecentBadges) == 0 {
		fmt.Fprintln(ctx.Out, "  None yet.")
	}
	for _, b := range d.RecentBadges {
		fmt.Fprintf(ctx.Out, "  %s\n", render.BadgeLine(b))
	}
	return nil
}
