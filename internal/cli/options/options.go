// Package options defines the terms command-line flags and turns a parsed
// invocation into exactly one mode.
package options

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// Flag names.
const (
	FlagGet     = "get"
	FlagAdd     = "add"
	FlagValue   = "value"
	FlagAll     = "all"
	FlagVersion = "version"
	FlagFile    = "file"
	FlagConfig  = "config"
	FlagVerbose = "verbose"
)

// Options is the mode selected for one invocation. It is one of Get, Add,
// All, Help or Version.
type Options interface {
	mode() string
}

// Get looks up a single term.
type Get struct {
	Term string
}

// Add defines a term. When HasValue is false the value is prompted for.
type Add struct {
	Term     string
	Value    string
	HasValue bool
}

// All lists every term.
type All struct{}

// Help prints a hint pointing at --help. Chosen when no mode flag is given.
type Help struct{}

// Version prints the tool version.
type Version struct{}

func (Get) mode() string     { return FlagGet }
func (Add) mode() string     { return FlagAdd }
func (All) mode() string     { return FlagAll }
func (Help) mode() string    { return "help" }
func (Version) mode() string { return FlagVersion }

// Name returns a short label for o, for logging.
func Name(o Options) string {
	return o.mode()
}

// Settings are the flags that shape how a mode runs rather than which one.
type Settings struct {
	File    string
	Config  string
	Verbose bool
}

// Flags returns every flag terms accepts besides the built-in --help.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: FlagGet, Aliases: []string{"g"}, Usage: "Get value of an existing `TERM`"},
		&cli.StringFlag{Name: FlagAdd, Aliases: []string{"a"}, Usage: "Add a new `TERM`"},
		&cli.StringFlag{Name: FlagValue, Aliases: []string{"v"}, Usage: "Optionally add a `VALUE` for a new term, will prompt if not provided"},
		&cli.BoolFlag{Name: FlagAll, Usage: "See the full glossary of terms and values alphabetically sorted"},
		&cli.BoolFlag{Name: FlagVersion, Usage: "Print the version"},
		&cli.StringFlag{Name: FlagFile, Aliases: []string{"f"}, Usage: "Use the glossary stored at `PATH` instead of ~/.terms.json"},
		&cli.StringFlag{Name: FlagConfig, Usage: "Read configuration from `PATH`"},
		&cli.BoolFlag{Name: FlagVerbose, Usage: "Enable verbose output"},
	}
}

// FromContext picks the mode for a parsed invocation. When several mode
// flags are present the first match wins, in the order --version, --all,
// --add, --get. A term that looks like a flag means the term itself was
// left out, so it falls back to Help.
func FromContext(c *cli.Context) Options {
	switch {
	case c.Bool(FlagVersion):
		return Version{}
	case c.Bool(FlagAll):
		return All{}
	case c.IsSet(FlagAdd) && looksLikeFlag(c.String(FlagAdd)),
		c.IsSet(FlagGet) && !c.IsSet(FlagAdd) && looksLikeFlag(c.String(FlagGet)):
		return Help{}
	case c.IsSet(FlagAdd):
		return Add{
			Term:     c.String(FlagAdd),
			Value:    c.String(FlagValue),
			HasValue: c.IsSet(FlagValue),
		}
	case c.IsSet(FlagGet):
		return Get{Term: c.String(FlagGet)}
	default:
		return Help{}
	}
}

func looksLikeFlag(term string) bool {
	return strings.HasPrefix(term, "-")
}

// SettingsFromContext reads the non-mode flags.
func SettingsFromContext(c *cli.Context) Settings {
	return Settings{
		File:    c.String(FlagFile),
		Config:  c.String(FlagConfig),
		Verbose: c.Bool(FlagVerbose),
	}
}
