package cli

import (
	"fmt"
	"sort"

	"github.com/julianstephens/zoneline/internal/civil"
	"github.com/julianstephens/zoneline/internal/logger"
	"github.com/julianstephens/zoneline/internal/models"
	"github.com/julianstephens/zoneline/internal/tztable"
)

type ZoneImportCmd struct {
	Name string `arg:"" help:"IANA zone name (e.g. Europe/Paris)."`
	As   string `help:"Store under a different name."`
}

func (c *ZoneImportCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	table, err := tztable.LoadIANA(c.Name, settings.FromYear, settings.ToYear)
	if err != nil {
		return err
	}

	name := c.Name
	if c.As != "" {
		name = c.As
	}

	if err := ctx.Store.AddZone(NewZoneRecord(name, models.SourceIANA, table)); err != nil {
		return fmt.Errorf("failed to store zone: %w", err)
	}

	logger.Info("imported zone", "name", name, "transitions", len(table.Transitions))
	fmt.Printf("Imported %s (%d zones, %d transitions, window %d-%d)\n",
		name, len(table.Zones), len(table.Transitions), settings.FromYear, settings.ToYear)
	return nil
}

type ZoneAddFixedCmd struct {
	Name   string `arg:"" help:"Name for the new zone."`
	Offset string `arg:"" help:"Constant offset (±HH:MM, ±HH:MM:SS, Z, or seconds)."`
}

func (c *ZoneAddFixedCmd) Run(ctx *Context) error {
	seconds, err := ParseOffset(c.Offset)
	if err != nil {
		return err
	}

	table, err := tztable.Fixed(c.Name, seconds)
	if err != nil {
		return err
	}

	if err := ctx.Store.AddZone(NewZoneRecord(c.Name, models.SourceFixed, table)); err != nil {
		return fmt.Errorf("failed to store zone: %w", err)
	}

	offset, _ := civil.NewFixedOffset(seconds)
	fmt.Printf("Added fixed zone %s at %s\n", c.Name, offset)
	return nil
}

type ZoneListCmd struct {
	All bool `help:"Include soft-deleted zones."`
}

func (c *ZoneListCmd) Run(ctx *Context) error {
	zones, err := ctx.Store.GetAllZones(c.All)
	if err != nil {
		return err
	}

	if len(zones) == 0 {
		fmt.Println("No zones stored. Import one with 'zoneline zone import <name>'.")
		return nil
	}

	for _, z := range zones {
		status := ""
		if z.DeletedAt != nil {
			status = "  (deleted, restore with 'zone restore')"
		}
		fmt.Printf("%-28s %-7s %d transitions%s\n", z.Name, z.Source, len(z.Table.Transitions), status)
	}
	return nil
}

type ZoneShowCmd struct {
	Name   string `arg:"" help:"Zone name."`
	Around string `help:"Show only transitions in the year of this date (YYYY-MM-DD)."`
}

func (c *ZoneShowCmd) Run(ctx *Context) error {
	record, err := ctx.Store.GetZone(c.Name)
	if err != nil {
		return err
	}
	tab := record.Table

	fmt.Printf("%s (%s)\n", record.Name, record.Source)
	initial := tab.Zones[tab.InitialZone]
	fmt.Printf("initial zone: %s", initial.Name)
	if off, err := civil.NewFixedOffset(initial.OffsetSeconds); err == nil {
		fmt.Printf(" %s", off)
	}
	fmt.Println()

	if tab.IsFixed() {
		fmt.Println("no transitions (fixed offset)")
		return nil
	}

	transitions := tab.Transitions
	if c.Around != "" {
		date, err := civil.ParseDate(c.Around)
		if err != nil {
			return fmt.Errorf("invalid --around date: %w", err)
		}
		lo := civil.DateTime{Date: civil.MustDate(date.Year, 1, 1)}.Unix()
		hi := civil.DateTime{Date: civil.MustDate(date.Year, 12, 31), Time: civil.MustTimeOfDay(23, 59, 59, 0)}.Unix()
		var filtered []tztable.Transition
		i := sort.Search(len(transitions), func(i int) bool { return transitions[i].When >= lo })
		for ; i < len(transitions) && transitions[i].When <= hi; i++ {
			filtered = append(filtered, transitions[i])
		}
		transitions = filtered
	}

	for _, tr := range transitions {
		fmt.Println(FormatTransition(tab, tr))
	}
	fmt.Printf("%d transitions\n", len(transitions))
	return nil
}

type ZoneDeleteCmd struct {
	Name string `arg:"" help:"Zone name."`
}

func (c *ZoneDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteZone(c.Name); err != nil {
		return err
	}
	fmt.Printf("Deleted zone %s (restore with 'zoneline zone restore %s')\n", c.Name, c.Name)
	return nil
}

type ZoneRestoreCmd struct {
	Name string `arg:"" help:"Zone name."`
}

func (c *ZoneRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.RestoreZone(c.Name); err != nil {
		return err
	}
	fmt.Printf("Restored zone %s\n", c.Name)
	return nil
}
