// Package cmd implements the stl command line tool to inspect settlement instructions.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/settlement"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Commands are the stl subcommands.
var Commands = []subcommands.Command{
	&reportCmd{},
	&settleCmd{},
	&checkCmd{},
}

const (
	EnvInstructions = "STL_INSTRUCTIONS"
	EnvLogLevel     = "STL_LOG_LEVEL"
	EnvLogFormat    = "STL_LOG_FORMAT"
)

const defaultInstructionsFile = "instructions.jsonl"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var instructionsFile = flag.String("instructions", "", "Path to the instructions file, JSONL or CSV with a .csv extension (default $"+EnvInstructions+" or "+defaultInstructionsFile+")")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error (default $"+EnvLogLevel+" or info)")
var logFormat = flag.String("log-format", "", "Log format: console or json (default $"+EnvLogFormat+" or console)")
var raw = flag.Bool("raw", false, "Print markdown as is, without terminal rendering")

// output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LoadEnv loads environment defaults from a .env file in the current
// directory. A missing file is not an error.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// flagOrEnv returns the flag value, or the environment variable when the flag
// is empty, or def.
func flagOrEnv(value, env, def string) string {
	if value != "" {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func instructionsPath() string {
	return flagOrEnv(*instructionsFile, EnvInstructions, defaultInstructionsFile)
}

// newLogger returns the logger configured by the global flags. Logs always
// go to stderr, stdout is reserved for the command output.
func newLogger() (zerolog.Logger, error) {
	name := flagOrEnv(*logLevel, EnvLogLevel, "info")
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", name, err)
	}

	var out io.Writer
	switch format := flagOrEnv(*logFormat, EnvLogFormat, "console"); format {
	case "console":
		out = zerolog.ConsoleWriter{Out: stderr, TimeFormat: "15:04:05"}
	case "json":
		out = stderr
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// setup returns the logger and the decoded instructions. Errors are printed,
// the returned status is meaningful only when ok is false.
func setup() (log zerolog.Logger, list []settlement.Instruction, status subcommands.ExitStatus, ok bool) {
	log, err := newLogger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return log, nil, subcommands.ExitUsageError, false
	}
	name := instructionsPath()
	list, err = settlement.DecodeInstructionsFile(name)
	if err != nil {
		log.Error().Err(err).Str("file", name).Msg("cannot decode instructions")
		return log, nil, subcommands.ExitFailure, false
	}
	log.Debug().Str("file", name).Int("instructions", len(list)).Msg("instructions decoded")
	return log, list, subcommands.ExitSuccess, true
}
