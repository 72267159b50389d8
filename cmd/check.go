package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"
)

type checkCmd struct {
	strict bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the instructions file" }
func (*checkCmd) Usage() string {
	return `stl check [-strict]

  Decodes and validates every instruction of the file and prints how many
  there are. Currencies that are not ISO 4217 codes are reported as warnings,
  or as errors with -strict.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "Fail on unknown currency codes.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log, list, status, ok := setup()
	if !ok {
		return status
	}

	unknown := 0
	for k, ins := range list {
		code := strings.ToUpper(strings.TrimSpace(ins.Currency()))
		if money.GetCurrency(code) != nil {
			continue
		}
		unknown++
		log.Warn().Int("instruction", k+1).Str("currency", ins.Currency()).Msg("unknown currency code")
	}

	fmt.Fprintf(stdout, "%d instructions, %d unknown currencies\n", len(list), unknown)
	if c.strict && unknown > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
