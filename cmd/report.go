package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/settlement"
	"github.com/etnz/settlement/date"
	"github.com/etnz/settlement/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	date   string
	period string
	start  string
	json   bool
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "report incoming and outgoing settlements in USD, per day"
}
func (*reportCmd) Usage() string {
	return `stl report [-d <date>] [-p <period> | -s <start_date>] [-json]

  Reports, for every day of a range, the total amount settled incoming (SELL)
  and outgoing (BUY) in USD, and ranks the instructions of each day by amount.

  Without any flag, the range spans every settlement date of the file.
  With -d only, the range is that single day, -p extends it to the day, week
  or month containing it, -s sets its first day.

  With -json the instructions of each day are printed as JSONL instead, by
  ascending amount, incoming first.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "The report date, or the last day of a custom range (defaults to today).")
	f.StringVar(&c.period, "p", "", "Predefined period containing the date (day, week, month).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.BoolVar(&c.json, "json", false, "Print instructions as JSONL instead of a markdown report.")
}

// days returns the range of days to report on.
func (c *reportCmd) days(r *settlement.Report) (date.Range, error) {
	if c.date == "" && c.period == "" && c.start == "" {
		dates := r.SettlementDates()
		if len(dates) == 0 {
			today := date.Today()
			return date.Range{From: today, To: today}, nil
		}
		return date.Range{From: dates[0], To: dates[len(dates)-1]}, nil
	}

	end := date.Today()
	if c.date != "" {
		var err error
		if end, err = date.Parse(c.date); err != nil {
			return date.Range{}, fmt.Errorf("invalid date: %w", err)
		}
	}
	if c.start != "" {
		start, err := date.Parse(c.start)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
		if end.Before(start) {
			return date.Range{}, fmt.Errorf("start date %s is after %s", start, end)
		}
		return date.Range{From: start, To: end}, nil
	}
	period := date.Daily
	if c.period != "" {
		var err error
		if period, err = date.ParsePeriod(c.period); err != nil {
			return date.Range{}, err
		}
	}
	return date.NewRange(end, period), nil
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, list, status, ok := setup()
	if !ok {
		return status
	}
	report, err := settlement.NewReport(list)
	if err != nil {
		log.Error().Err(err).Msg("cannot create report")
		return subcommands.ExitFailure
	}

	days, err := c.days(report)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing range: %v\n", err)
		return subcommands.ExitUsageError
	}
	log.Debug().Stringer("range", days).Msg("reporting")

	if c.json {
		for on := range days.Days() {
			for _, d := range []settlement.Direction{settlement.Incoming, settlement.Outgoing} {
				sorted, err := report.Sorted(on, d)
				if err != nil {
					log.Error().Err(err).Msg("cannot sort instructions")
					return subcommands.ExitFailure
				}
				if err := settlement.EncodeInstructions(stdout, sorted); err != nil {
					log.Error().Err(err).Msg("cannot write instructions")
					return subcommands.ExitFailure
				}
			}
		}
		return subcommands.ExitSuccess
	}

	view, err := renderer.NewSettlementReport(report, days, date.Today())
	if err != nil {
		log.Error().Err(err).Msg("cannot compute report")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderSettlementReport(view))
	return subcommands.ExitSuccess
}
