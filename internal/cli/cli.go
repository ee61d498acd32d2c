package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/tapastro/calsuffix/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("calsuffix", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
calsuffix - discover the calibration pipeline's output-filename suffixes.

Scans the step-module manifests and the pipeline configuration directory,
derives the set of suffixes the registered steps can produce, and reports
drift against the committed known list.

Usage:
  calsuffix [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	packagePathFlag := flagSet.String("package-path", "modules", "Path to the step-module manifest tree.")
	configPathFlag := flagSet.String("config-path", "pipeline", "Path to the pipeline configuration directory.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	knownFlag := flagSet.Bool("known", false, "Print the committed known-suffix list and exit.")
	removeFlag := flagSet.String("remove", "", "Remove a known suffix from the given basename and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		PackagePath: *packagePathFlag,
		ConfigPath:  *configPathFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		ShowKnown:   *knownFlag,
		RemoveName:  *removeFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
