package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
)

// builtins are the commands registered by the commander itself.
var builtins = []string{"help", "flags", "commands"}

// IsCommand returns true if name is a built-in or stl subcommand.
func IsCommand(name string) bool {
	if slices.Contains(builtins, name) {
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension attempts to find and execute an external stl-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// Global flags are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "stl-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvInstructions+"="+instructionsPath())
	cmd.Env = append(cmd.Env, EnvLogLevel+"="+flagOrEnv(*logLevel, EnvLogLevel, "info"))
	cmd.Env = append(cmd.Env, EnvLogFormat+"="+flagOrEnv(*logFormat, EnvLogFormat, "console"))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
