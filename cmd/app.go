// Package cmd implements the CLI application to inspect and rewrite
// QIF files.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/qif"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountsCmd{}, "inspect")
	c.Register(&txCmd{}, "inspect")
	c.Register(&catCmd{}, "inspect")
	c.Register(&summaryCmd{}, "inspect")

	c.Register(&fmtCmd{}, "files")
	c.Register(&exportCmd{}, "files")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var qifFile = flag.String("f", "export.qif", "Path to the QIF file to read")
var dateLayout = flag.String("date-layout", "", "Go time layout for date fields. Empty applies the day-first heuristic.")
var verbose = flag.Bool("v", false, "Log every skipped line")

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// skippedLogger routes parser notices about unrecognized field lines to
// the console logger.
type skippedLogger struct{}

func (skippedLogger) SkippedLine(kind, line string) {
	logger.Warn().Str("kind", kind).Str("line", line).Msg("skipped unrecognized line")
}

// decodeDocument is the central function to read the app's QIF file.
func decodeDocument() (*qif.Qif, error) {
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	f, err := os.Open(*qifFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := &qif.Parser{DateLayout: *dateLayout, Diagnostics: skippedLogger{}}
	doc, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", *qifFile, err)
	}
	logger.Debug().
		Str("file", *qifFile).
		Int("accounts", len(doc.Accounts())).
		Int("categories", len(doc.Categories())).
		Msg("document decoded")
	return doc, nil
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
