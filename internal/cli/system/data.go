package system

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/export"
)

type ExportCmd struct {
	Output string `short:"o" help:"File to write, or - for stdout. Defaults to a timestamped file in the current directory."`
	Format string `help:"Export format: json or yaml. Defaults to the output file's extension."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	format := export.FormatJSON
	if c.Format != "" {
		f, err := export.ParseFormat(c.Format)
		if err != nil {
			return err
		}
		format = f
	} else if c.Output != "" && c.Output != "-" {
		format = export.FormatForPath(c.Output)
	}

	dump := export.Build(ctx.Tracker.Repository(), now)

	if c.Output == "-" {
		return export.Write(ctx.Out, dump, format)
	}

	path := c.Output
	if path == "" {
		path = export.FileName(format, now)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := export.Write(f, dump, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Fprintf(ctx.Out, "✓ Exported data to %s\n", path)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Export file to import (json or yaml)."`
	Yes  bool   `short:"y" help:"Replace existing data without asking."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	dump, err := export.Read(f, export.FormatForPath(c.File))
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Fprintf(ctx.Out, "⚠️  This replaces all current data with the export from %s.\n", dump.ExportedAt.Format("2006-01-02 15:04"))
		ok, err := ctx.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(ctx.Out, "Import cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := export.Apply(ctx.Tracker.Repository(), dump); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Fprintf(ctx.Out, "✓ Imported %d challenge(s) and %d weekly log(s)\n", len(dump.UserChallenges), len(dump.WeeklyLogs))
	return nil
}

type ClearCmd struct {
	Yes bool `short:"y" help:"Delete without asking."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		fmt.Fprintln(ctx.Out, "⚠️  This deletes your habits, score, challenges, weekly logs and profile.")
		ok, err := ctx.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(ctx.Out, "Clear cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Tracker.Clear(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	fmt.Fprintln(ctx.Out, "✓ All data cleared")
	return nil
}
