package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors of flag values, by flag name. Unlisted flags accept anything.
var predictors = map[string]complete.Predictor{
	"instructions": predict.Files("*"),
	"log-level":    predict.Set{"debug", "info", "warn", "error"},
	"log-format":   predict.Set{"console", "json"},
	"p":            predict.Set{"day", "week", "month"},
	"c":            predict.Set{"USD", "GBP", "EUR", "SGD", "AED", "SAR"},
}

// Completion returns the shell completion of the global flags and of every
// subcommand and its flags.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[fl.Name] = predict.Nothing
			return
		}
		if p, ok := predictors[fl.Name]; ok {
			m[fl.Name] = p
			return
		}
		m[fl.Name] = predict.Something
	})
	return m
}
