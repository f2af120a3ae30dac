// Command dirtyjson cleans dirty JSON files into strict JSON and reports
// tokenizer statistics.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// cli holds state shared by every sub-command of a single invocation.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logLevel    string
	logLevelSet bool
	configFile  string

	cfg    Config
	logger log.Logger
	ready  bool // logger configured
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	c := &cli{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    DefaultConfig(),
		logger: log.NewNopLogger(),
	}

	app := kingpin.New("dirtyjson", "Convert JSON with comments, bare keys, single quotes, trailing commas and hex numbers into strict JSON.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.HelpFlag.Short('h')
	app.Flag("log.level", "Only log messages with the given severity or above. One of: [debug, info, warn, error]").
		Default(defaultLogLevel).Envar("DIRTYJSON_LOG_LEVEL").IsSetByUser(&c.logLevelSet).
		EnumVar(&c.logLevel, "debug", "info", "warn", "error")
	app.Flag("config.file", "YAML file with default settings.").
		Envar("DIRTYJSON_CONFIG_FILE").StringVar(&c.configFile)
	app.PreAction(c.setup)

	addCleanCommand(app, c)
	addTokensCommand(app, c)
	addStatsCommand(app, c)

	if _, err := app.Parse(args); err != nil {
		if c.ready {
			level.Error(c.logger).Log("msg", "command failed", "err", err)
		} else {
			fmt.Fprintln(stderr, "dirtyjson:", err)
		}
		return err
	}
	return nil
}

// setup loads the config file and builds the logger before any command
// runs.
func (c *cli) setup(*kingpin.ParseContext) error {
	if c.configFile != "" {
		cfg, err := LoadConfig(c.configFile)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}

	lvl := c.logLevel
	if !explicit(c.logLevelSet, "DIRTYJSON_LOG_LEVEL") && c.cfg.LogLevel != "" {
		lvl = c.cfg.LogLevel
	}
	logger, err := newLogger(c.stderr, lvl)
	if err != nil {
		return err
	}
	c.logger = logger
	c.ready = true

	level.Debug(c.logger).Log("msg", "configuration loaded", "file", c.configFile, "mode", c.cfg.Mode, "pretty", c.cfg.Pretty, "validate", c.cfg.Validate)
	return nil
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		opt = level.AllowDebug()
	case "info", "":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, errors.Errorf("unknown log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}

// explicit reports whether a setting came from the command line or its
// environment variable, in which case it takes precedence over the config
// file.
func explicit(setByUser bool, envar string) bool {
	if setByUser {
		return true
	}
	_, ok := os.LookupEnv(envar)
	return ok
}
