package cli

import (
	"fmt"

	"github.com/julianstephens/zoneline/internal/models"
	"github.com/julianstephens/zoneline/internal/tztable"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// Seed the store with the degenerate UTC table so there is always at
	// least one resolvable zone.
	if err := ctx.Store.AddZone(NewZoneRecord("UTC", models.SourceFixed, tztable.UTC())); err != nil {
		return fmt.Errorf("failed to seed UTC zone: %w", err)
	}

	fmt.Printf("Initialized zoneline storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
