package cli

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/subst/log"
)

// logConfig carries the logging flags shared by every command.
type logConfig struct {
	Level  string `help:"Minimum log level" enum:"trace,debug,info,warn,error" default:"info"`
	Format string `help:"Log output format" enum:"text,json"                   default:"text"`
	Pretty bool   `help:"Colorize log output"                                  default:"true" negatable:""`
}

func (c logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging flags:"}
}

// make constructs the process logger from the parsed flags.
func (c logConfig) make() log.Logger {
	return log.Make(
		os.Stderr,
		log.WithLevel(log.ParseLevel(c.Level)),
		log.WithFormat(log.ParseFormat(c.Format)),
		log.WithPretty(c.Pretty),
	)
}
