package cli

import (
	"fmt"

	"github.com/julianstephens/zoneline/internal/civil"
	"github.com/julianstephens/zoneline/internal/logger"
)

type FromUTCCmd struct {
	DateTime string `arg:"" optional:"" help:"Naive UTC date/time (YYYY-MM-DD[THH:MM[:SS]]); defaults to now."`
	Zone     string `help:"Zone name to convert into (default: stored default zone)." short:"z"`
}

func (c *FromUTCCmd) Run(ctx *Context) error {
	resolver, err := ctx.ResolverFor(c.Zone)
	if err != nil {
		return err
	}

	var utc civil.DateTime
	if c.DateTime == "" {
		utc = ctx.Clock.NowUTC()
	} else {
		utc, err = civil.ParseDateTime(c.DateTime)
		if err != nil {
			return fmt.Errorf("invalid date/time: %w", err)
		}
	}

	local, offset := resolver.ResolveUTC(utc)
	logger.Debug("resolved utc time", "utc", utc.String(), "offset", offset.String())
	fmt.Printf("%s (UTC) = %s%s\n", utc, local, offset)
	return nil
}
