package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/settlement/date"
	"github.com/etnz/settlement/renderer"
	"github.com/google/subcommands"
)

type settleCmd struct {
	date     string
	currency string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "show the business day a settlement date moves to" }
func (*settleCmd) Usage() string {
	return `stl settle -d <date> [-c <currency>]

  Prints the first business day on or after the requested settlement date,
  under the weekend of the currency. AED and SAR rest on Friday and Saturday,
  every other currency on Saturday and Sunday.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "The requested settlement date (required).")
	f.StringVar(&c.currency, "c", "USD", "The currency of the instruction.")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(stderr, "Error: -d is required")
		return subcommands.ExitUsageError
	}
	requested, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.currency == "" {
		fmt.Fprintln(stderr, "Error: -c must not be empty")
		return subcommands.ExitUsageError
	}

	view, err := renderer.NewSettle(requested, c.currency)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderSettle(view))
	return subcommands.ExitSuccess
}
