package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/zoneline/internal/civil"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("default-zone:  %s\n", settings.DefaultZone)
	fmt.Printf("import-window: %d-%d\n", settings.FromYear, settings.ToYear)
	return nil
}

type SettingsSetCmd struct {
	DefaultZone string `help:"Zone name used when --zone is omitted."`
	FromYear    int    `help:"Start of the IANA import window."`
	ToYear      int    `help:"End of the IANA import window."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.DefaultZone != "" {
		// The default must actually resolve; a typo here would break
		// every command that falls back to it.
		if !strings.EqualFold(c.DefaultZone, "UTC") {
			if _, err := ctx.Store.GetZone(c.DefaultZone); err != nil {
				return fmt.Errorf("zone %q is not in the store, import it first", c.DefaultZone)
			}
		}
		settings.DefaultZone = c.DefaultZone
	}
	if c.FromYear != 0 {
		settings.FromYear = c.FromYear
	}
	if c.ToYear != 0 {
		settings.ToYear = c.ToYear
	}

	if settings.FromYear < civil.MinYear || settings.ToYear > civil.MaxYear || settings.FromYear > settings.ToYear {
		return fmt.Errorf("import window %d-%d is invalid", settings.FromYear, settings.ToYear)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("Settings updated")
	return nil
}
