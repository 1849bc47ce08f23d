package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vk/taskflowgo/internal/app"
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

// fileConfig is the optional TOML config file shape. Flags given on the
// command line always win over file values.
type fileConfig struct {
	Plan      string `toml:"plan"`
	Listen    string `toml:"listen"`
	LogFormat string `toml:"log_format"`
	LogLevel  string `toml:"log_level"`
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("taskflowgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
TaskFlowGo - a dependency-ordered task scheduler.

Usage:
  taskflowgo [options] [PLAN_PATH]

Arguments:
  PLAN_PATH
    Path to a .hcl or .json plan file, or a directory of .hcl plan files.

Options:
`)
		flagSet.PrintDefaults()
	}

	planFlag := flagSet.String("plan", "", "Path to the plan file or directory.")
	pFlag := flagSet.String("p", "", "Path to the plan file or directory (shorthand).")
	listenFlag := flagSet.String("listen", "", "Address for the HTTP schedule API, e.g. ':8080'. Empty disables.")
	configFlag := flagSet.String("config", "", "Path to an optional TOML config file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Track which flags were given explicitly so file values only fill gaps.
	explicit := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	path := ""
	switch {
	case *planFlag != "":
		path = *planFlag
	case *pFlag != "":
		path = *pFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}

	listen := *listenFlag
	logFormat := *logFormatFlag
	logLevel := *logLevelFlag

	if *configFlag != "" {
		fc, err := loadFileConfig(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if path == "" {
			path = fc.Plan
		}
		if !explicit["listen"] && fc.Listen != "" {
			listen = fc.Listen
		}
		if !explicit["log-format"] && fc.LogFormat != "" {
			logFormat = fc.LogFormat
		}
		if !explicit["log-level"] && fc.LogLevel != "" {
			logLevel = fc.LogLevel
		}
	}

	if path == "" && listen == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat = strings.ToLower(logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel = strings.ToLower(logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		PlanPath:   path,
		ListenAddr: listen,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}

// loadFileConfig decodes a TOML config file, rejecting unknown keys so a
// typo'd setting fails loudly instead of being ignored.
func loadFileConfig(path string) (*fileConfig, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config file %s", undecoded[0].String(), path)
	}
	return &fc, nil
}
