package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/zoneline/internal/cli"
	"github.com/julianstephens/zoneline/internal/errors"
	"github.com/julianstephens/zoneline/internal/logger"
	"github.com/julianstephens/zoneline/internal/resolve"
	"github.com/julianstephens/zoneline/internal/storage"
	"github.com/julianstephens/zoneline/internal/tztable"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/zoneline/zoneline.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize zoneline storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive explorer." default:"1"`
	Resolve cli.ResolveCmd `cmd:"" help:"Resolve a naive local date/time against a zone."`
	Fromutc cli.FromUTCCmd `cmd:"" help:"Convert a naive UTC date/time to local."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Zone    struct {
		Import   cli.ZoneImportCmd   `cmd:"" help:"Import an IANA zone's transition table."`
		AddFixed cli.ZoneAddFixedCmd `cmd:"" help:"Add a fixed-offset zone."`
		List     cli.ZoneListCmd     `cmd:"" help:"List stored zones."`
		Show     cli.ZoneShowCmd     `cmd:"" help:"Show a zone's transitions."`
		Delete   cli.ZoneDeleteCmd   `cmd:"" help:"Delete a zone."`
		Restore  cli.ZoneRestoreCmd  `cmd:"" help:"Restore a deleted zone."`
	} `cmd:"" help:"Manage stored zones."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show settings." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change settings."`
	} `cmd:"" help:"Manage application settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the zone store." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Back up and restore the zone store."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("zoneline"),
		kong.Description("Civil-time explorer: resolve naive timestamps against time-zone transition tables"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Clock: resolve.NewSystemClock(tztable.UTC()),
	}

	// Load the store before running the command (Init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
