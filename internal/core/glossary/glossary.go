// Package glossary implements the term operations: looking up a term,
// adding one (with a given or prompted value) and listing all of them.
package glossary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/nightconcept/terms/internal/core/store"
	"github.com/nightconcept/terms/internal/logger"
)

// Undefined is printed in place of the value of a term that is not in the glossary.
const Undefined = "undefined"

// Document maps each term to its definition.
type Document map[string]string

// Entry is one term and its definition.
type Entry struct {
	Term  string
	Value string
}

// Sorted returns the document's entries ordered by term, byte-wise ascending.
func (d Document) Sorted() []Entry {
	terms := make([]string, 0, len(d))
	for term := range d {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	entries := make([]Entry, 0, len(terms))
	for _, term := range terms {
		entries = append(entries, Entry{Term: term, Value: d[term]})
	}
	return entries
}

// Prompter asks the user for a value.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Glossary runs term operations against a store.
type Glossary struct {
	store  *store.Store
	out    io.Writer
	prompt Prompter
	log    zerolog.Logger
}

// Option configures a Glossary.
type Option func(*Glossary)

// WithOutput sets where results are printed. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(g *Glossary) { g.out = w }
}

// WithPrompt sets the source of interactively entered values.
func WithPrompt(p Prompter) Option {
	return func(g *Glossary) { g.prompt = p }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Glossary) { g.log = log }
}

// New returns a Glossary backed by s.
func New(s *store.Store, opts ...Option) *Glossary {
	g := &Glossary{
		store: s,
		out:   os.Stdout,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Load reads and parses the whole document.
func (g *Glossary) Load() (Document, error) {
	raw, err := g.store.Read()
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", g.store.Path(), err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Get prints and returns the value of term. A term that is not defined is
// reported with found set to false; that is not an error.
func (g *Glossary) Get(term string) (value string, found bool, err error) {
	doc, err := g.Load()
	if err != nil {
		return "", false, err
	}

	value, found = doc[term]
	shown := value
	if !found {
		shown = Undefined
		g.log.Debug().Str("term", term).Msg("term not defined")
	}
	termColor := color.New(color.FgCyan, color.Bold).SprintFunc()
	_, _ = fmt.Fprintf(g.out, "%s: %s\n", termColor(term), shown)
	return value, found, nil
}

// Add binds term to value and saves the document.
func (g *Glossary) Add(term, value string) error {
	doc, err := g.Load()
	if err != nil {
		return err
	}
	return g.save(doc, term, value)
}

// AddInteractive prompts for the value of term, then binds and saves it.
// It waits for input with no timeout; only ctx or closing the input ends
// the wait early. The entered value is returned.
func (g *Glossary) AddInteractive(ctx context.Context, term string) (string, error) {
	if g.prompt == nil {
		return "", fmt.Errorf("no value given for '%s' and no prompt available", term)
	}

	doc, err := g.Load()
	if err != nil {
		return "", err
	}

	value, err := g.prompt.Ask(ctx, fmt.Sprintf("Enter value for %s: ", term))
	if err != nil {
		return "", err
	}

	if err := g.save(doc, term, value); err != nil {
		return "", err
	}
	_, _ = color.New(color.FgGreen).Fprintf(g.out, "Added %s: %s\n", term, value)
	return value, nil
}

func (g *Glossary) save(doc Document, term, value string) error {
	if previous, ok := doc[term]; ok && previous != value {
		g.log.Debug().Str("term", term).Str("previous", previous).Msg("replacing existing definition")
	}
	doc[term] = value
	if err := g.store.WriteDocument(doc); err != nil {
		return fmt.Errorf("saving '%s': %w", term, err)
	}
	return nil
}

// ShowAll prints every term with its value in alphabetical order and
// returns the entries in that order. The stored document is not modified.
func (g *Glossary) ShowAll() ([]Entry, error) {
	doc, err := g.Load()
	if err != nil {
		return nil, err
	}

	entries := doc.Sorted()
	if len(entries) == 0 {
		_, _ = fmt.Fprintf(g.out, "No terms defined in %s.\n", g.store.Path())
		return entries, nil
	}

	termColor := color.New(color.FgCyan, color.Bold).SprintFunc()
	for _, e := range entries {
		_, _ = fmt.Fprintf(g.out, "%s: %s\n", termColor(e.Term), e.Value)
	}
	return entries, nil
}
