package system

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/thrive/internal/cli"
	"github.com/julianstephens/thrive/internal/constants"
)

type DebugCmd struct {
	DBPath *DebugDBPathCmd `cmd:"" help:"Show store path."`
	Keys   *DebugKeysCmd   `cmd:"" help:"List stored keys."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump the raw JSON stored under a key."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"path":    ctx.Store.GetConfigPath(),
		"dataDir": ctx.ConfigDir,
	}
	return writeJSON(ctx, output)
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}
	return writeJSON(ctx, keys)
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Logical key to dump (e.g. wellness_habits or just habits)."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	key, err := resolveKey(cmd.Key)
	if err != nil {
		return err
	}

	raw, ok, err := ctx.Store.Get(key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return fmt.Errorf("no data stored under %s", key)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Not JSON; show it as stored
		fmt.Fprintln(ctx.Out, string(raw))
		return nil
	}
	fmt.Fprintln(ctx.Out, buf.String())
	return nil
}

// resolveKey accepts a full logical key or its suffix after "wellness_".
func resolveKey(name string) (string, error) {
	for _, key := range constants.AllKeys {
		if name == key || "wellness_"+name == key {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown key %q, expected one of %v", name, constants.AllKeys)
}

func writeJSON(ctx *cli.Context, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.Out, string(jsonBytes))
	return nil
}
