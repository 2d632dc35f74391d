// Package app assembles the terms command-line application and dispatches
// each invocation to one glossary operation.
package app

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/terms/internal/cli/options"
	"github.com/nightconcept/terms/internal/core/config"
	"github.com/nightconcept/terms/internal/core/glossary"
	"github.com/nightconcept/terms/internal/core/prompt"
	"github.com/nightconcept/terms/internal/core/store"
	"github.com/nightconcept/terms/internal/core/version"
	"github.com/nightconcept/terms/internal/logger"
)

// HelpHint is printed when no mode flag is given.
const HelpHint = "For available options, please use the --help flag"

// New returns the terms application. buildVersion is what --version reports.
func New(buildVersion string) *cli.App {
	return &cli.App{
		Name:  "terms",
		Usage: "A CLI for managing a glossary of terms",
		// The built-in version flag claims -v, which belongs to --value.
		HideVersion:     true,
		HideHelpCommand: true,
		Flags:           options.Flags(),
		Action: func(c *cli.Context) error {
			return run(c, buildVersion)
		},
	}
}

func run(c *cli.Context, buildVersion string) error {
	settings := options.SettingsFromContext(c)
	log := logger.New(c.App.ErrWriter, settings.Verbose)
	opts := options.FromContext(c)
	log.Debug().Str("mode", options.Name(opts)).Msg("parsed options")

	switch o := opts.(type) {
	case options.Version:
		v, err := version.Canonical(buildVersion)
		if err != nil {
			log.Warn().Err(err).Msg("build version is not a semantic version")
			v = buildVersion
		}
		_, _ = fmt.Fprintln(c.App.Writer, v)
		return nil
	case options.Help:
		_, _ = fmt.Fprintln(c.App.Writer, HelpHint)
		return nil
	case options.All:
		g, err := openGlossary(c, settings, log)
		if err != nil {
			return err
		}
		if _, err := g.ShowAll(); err != nil {
			return cli.Exit(fmt.Sprintf("Error listing terms: %v", err), 1)
		}
		return nil
	case options.Add:
		g, err := openGlossary(c, settings, log)
		if err != nil {
			return err
		}
		return addTerm(c, g, o)
	case options.Get:
		g, err := openGlossary(c, settings, log)
		if err != nil {
			return err
		}
		if _, _, err := g.Get(o.Term); err != nil {
			return cli.Exit(fmt.Sprintf("Error getting '%s': %v", o.Term, err), 1)
		}
		return nil
	default:
		return cli.Exit(fmt.Sprintf("Error: unhandled mode %q", options.Name(opts)), 1)
	}
}

func addTerm(c *cli.Context, g *glossary.Glossary, o options.Add) error {
	if o.HasValue {
		if err := g.Add(o.Term, o.Value); err != nil {
			return cli.Exit(fmt.Sprintf("Error adding '%s': %v", o.Term, err), 1)
		}
		return nil
	}

	if _, err := g.AddInteractive(c.Context, o.Term); err != nil {
		if errors.Is(err, prompt.ErrNoInput) {
			return cli.Exit(fmt.Sprintf("Error: %v for '%s'", err, o.Term), 1)
		}
		return cli.Exit(fmt.Sprintf("Error adding '%s': %v", o.Term, err), 1)
	}
	return nil
}

// openGlossary loads configuration, resolves the glossary path and returns
// a Glossary wired to the app's streams. The path comes from --file, then
// the config file's store_path, then ~/.terms.json.
func openGlossary(c *cli.Context, settings options.Settings, log zerolog.Logger) (*glossary.Glossary, error) {
	cfg, err := loadConfig(settings.Config, log)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("Error loading configuration: %v", err), 1)
	}
	if cfg.Color != nil {
		color.NoColor = !*cfg.Color
	}

	path, err := storePath(settings.File, cfg)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("Error resolving glossary path: %v", err), 1)
	}
	log.Debug().Str("path", path).Msg("using glossary")

	s := store.New(path, log)
	return glossary.New(s,
		glossary.WithOutput(c.App.Writer),
		glossary.WithPrompt(prompt.New(c.App.Reader, c.App.Writer)),
		glossary.WithLogger(log),
	), nil
}

func loadConfig(path string, log zerolog.Logger) (*config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Debug().Err(err).Msg("no config directory, using defaults")
			return &config.Config{}, nil
		}
		path = p
	}
	log.Debug().Str("path", path).Msg("loading configuration")
	return config.Load(path)
}

func storePath(flagPath string, cfg *config.Config) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	p, err := cfg.ResolveStorePath()
	if err != nil {
		return "", err
	}
	if p != "" {
		return p, nil
	}
	return store.DefaultPath()
}
