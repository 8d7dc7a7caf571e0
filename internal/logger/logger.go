// Package logger builds the zerolog loggers used by the kyberntt command.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const (
	LogLevelFlag = "loglevel"
	LogJSONFlag  = "log-json"

	consoleTimeFormat = time.RFC3339
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = utcNow
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// Config selects where and how events are written.
type Config struct {
	MinLevel string // debug | info | warn | error
	JSON     bool   // raw JSON lines instead of the console format

	// Out defaults to os.Stderr.
	Out io.Writer
}

var defaultConfig = Config{MinLevel: "info"}

// Create returns a logger for cfg. A nil cfg gives console output at info
// level on stderr. An unparsable level falls back to info and is reported
// once through the new logger.
func Create(cfg *Config) *zerolog.Logger {
	if cfg == nil {
		c := defaultConfig
		cfg = &c
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = consoleWriter(out)
	}

	level, levelErr := zerolog.ParseLevel(cfg.MinLevel)
	if levelErr != nil || cfg.MinLevel == "" {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if levelErr != nil {
		log.Error().Msgf("Failed to parse log level %q, using %q instead", cfg.MinLevel, level)
	}
	return &log
}

// CreateFromContext reads the logging flags of c.
func CreateFromContext(c *cli.Context) *zerolog.Logger {
	return Create(&Config{
		MinLevel: c.String(LogLevelFlag),
		JSON:     c.Bool(LogJSONFlag),
		Out:      c.App.ErrWriter,
	})
}

// Flags returns the logging flags shared by all commands.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    LogLevelFlag,
			Value:   defaultConfig.MinLevel,
			Usage:   "Application logging level {debug, info, warn, error}",
			EnvVars: []string{"KYBERNTT_LOGLEVEL"},
		},
		&cli.BoolFlag{
			Name:    LogJSONFlag,
			Usage:   "Write log events as JSON lines",
			EnvVars: []string{"KYBERNTT_LOG_JSON"},
		},
	}
}

func consoleWriter(out io.Writer) io.Writer {
	noColor := true
	if f, ok := out.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
		out = colorable.NewColorable(f)
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: consoleTimeFormat,
	}
}
