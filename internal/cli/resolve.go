package cli

import (
	"fmt"

	"github.com/julianstephens/zoneline/internal/civil"
	"github.com/julianstephens/zoneline/internal/logger"
)

type ResolveCmd struct {
	DateTime string `arg:"" help:"Naive local date/time (YYYY-MM-DD[THH:MM[:SS]])."`
	Zone     string `help:"Zone name to resolve against (default: stored default zone)." short:"z"`
	DateOnly bool   `help:"Treat the input as a date and resolve its midnight."`
}

func (c *ResolveCmd) Run(ctx *Context) error {
	resolver, err := ctx.ResolverFor(c.Zone)
	if err != nil {
		return err
	}

	if c.DateOnly {
		date, err := civil.ParseDate(c.DateTime)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		result := resolver.ResolveLocalDate(date)
		logger.Debug("resolved local date", "date", date.String(), "kind", result.Kind().String())
		fmt.Println(FormatResult(result))
		return nil
	}

	dt, err := civil.ParseDateTime(c.DateTime)
	if err != nil {
		return fmt.Errorf("invalid date/time: %w", err)
	}
	result := resolver.ResolveLocal(dt)
	logger.Debug("resolved local time", "input", dt.String(), "kind", result.Kind().String())
	fmt.Println(FormatResult(result))
	return nil
}
