package system

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/eatforce/internal/cli"
	"github.com/julianstephens/eatforce/internal/storage"
)

type DebugCmd struct {
	DBPath DebugDBPathCmd `cmd:"" name:"db-path" help:"Show the store location."`
	Dump   DebugDumpCmd   `cmd:"" help:"Dump a stored snapshot as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	out, err := json.MarshalIndent(map[string]string{"path": ctx.Store.GetConfigPath()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.Stdout(), string(out))
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Snapshot key: settings, completed, log or weight." enum:"settings,completed,log,weight,SETTINGS,COMPLETED,LOG,WEIGHT"`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	key := strings.ToUpper(cmd.Key)
	data, err := ctx.Store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("nothing stored under %s", key)
	}
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		// malformed snapshots are printed raw so they can be inspected
		fmt.Fprintln(ctx.Stdout(), string(data))
		return nil
	}
	fmt.Fprintln(ctx.Stdout(), pretty.String())
	return nil
}
