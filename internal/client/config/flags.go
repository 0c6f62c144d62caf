package config

import (
	"flag"
	"os"
	"slices"
	"time"

	"github.com/dmitrijs2005/semant/internal/flagx"
)

var globalFlags = []string{"-a", "-t", "-r", "-d", "-l"}

// CommandArgs returns args without the configuration flags, leaving the
// subcommand and its own flags.
func CommandArgs(args []string) []string {
	return flagx.StripArgs(args, append(slices.Clone(globalFlags), flagx.ConfigFileFlags...))
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend API base URL
//	-t int      request timeout in seconds
//	-r float    outbound requests per second (0 = unlimited)
//	-d string   local store DSN
//	-l string   log format (text|zap)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so subcommand flags are left to the CLI.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], globalFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.Float64Var(&cfg.RateLimit, "r", cfg.RateLimit, "outbound requests per second, 0 disables limiting")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local store DSN")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format: text or zap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t applies only when given, so JSON sub-second values survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
