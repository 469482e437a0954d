// Package main provides the osisbible CLI: parse an OSIS document into its
// six rendered forms and query verses or passages out of it.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/sixforms/osisbible/internal/canon"
	"github.com/sixforms/osisbible/internal/contenthash"
	"github.com/sixforms/osisbible/internal/humanref"
	"github.com/sixforms/osisbible/internal/logging"
	"github.com/sixforms/osisbible/internal/osis"
	"github.com/sixforms/osisbible/internal/passage"
)

// CLI defines the command-line interface using Kong.
var CLI struct {
	Verbose bool `name:"verbose" short:"v" help:"Verbose (debug-level) logging"`

	Parse ParseCmd `cmd:"" help:"Parse an OSIS file and report its books and their chapter counts"`
	Verse VerseCmd `cmd:"" help:"Look up one verse or verse range"`
	Range RangeCmd `cmd:"" help:"Format a passage spanning one or more references"`
	Hash  HashCmd  `cmd:"" help:"Print the content hash of a parsed translation"`
}

// ParseCmd parses an OSIS file and reports summary statistics.
type ParseCmd struct {
	File string `arg:"" required:"" type:"path" help:"OSIS XML file to parse"`
}

func (c *ParseCmd) Run() error {
	t, err := parseFile(c.File)
	if err != nil {
		return err
	}
	fmt.Printf("osisIDWork: %s\n", t.OsisIDWork)
	fmt.Printf("books:      %d\n", len(t.Titles))
	for _, book := range canon.Books {
		if _, ok := t.Titles[book.OSIS]; !ok {
			continue
		}
		fmt.Printf("  %-6s %q (%d chapters)\n", book.OSIS, t.Titles[book.OSIS], len(t.MaxVerses[book.OSIS]))
	}
	if len(t.Unknown) > 0 {
		fmt.Println("unknown tags encountered:")
		for tag := range t.Unknown {
			fmt.Printf("  %s\n", tag)
		}
	}
	return nil
}

// VerseCmd looks up a single verse or verse range by human reference.
type VerseCmd struct {
	File      string `arg:"" required:"" type:"path" help:"OSIS XML file to parse"`
	Reference string `arg:"" required:"" help:"Reference, e.g. \"Mark 9:38-41\""`
	Form      string `name:"form" short:"f" default:"html" help:"Output form: html, html-readers, html-notes, plain, plain-readers, plain-notes"`
}

func (c *VerseCmd) Run() error {
	t, err := parseFile(c.File)
	if err != nil {
		return err
	}

	ref, err := humanref.Parse(c.Reference)
	if err != nil {
		return err
	}

	form, err := parseForm(c.Form)
	if err != nil {
		return err
	}

	bi := osis.BibleForm(t, t.OsisIDWork, form)
	text, err := bi.GetScripture(ref.StartVerseID, ref.EndVerseID)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

// RangeCmd formats a multi-reference passage.
type RangeCmd struct {
	File       string   `arg:"" required:"" type:"path" help:"OSIS XML file to parse"`
	References []string `arg:"" required:"" help:"One or more references, e.g. \"Gen 1:1\" \"Gen 1:3-5\""`
	Mode       string   `name:"mode" default:"html" help:"Output mode: html or plain"`
	ShortTitle bool     `name:"short-title" help:"Use short book titles"`
}

func (c *RangeCmd) Run() error {
	t, err := parseFile(c.File)
	if err != nil {
		return err
	}

	var verseIDs []int
	for _, r := range c.References {
		ref, err := humanref.Parse(r)
		if err != nil {
			return err
		}
		for id := ref.StartVerseID; id <= ref.EndVerseID; id++ {
			verseIDs = append(verseIDs, id)
		}
	}

	mode := passage.ModeHTML
	if c.Mode == "plain" {
		mode = passage.ModePlain
	}
	titleStyle := passage.TitleFull
	if c.ShortTitle {
		titleStyle = passage.TitleShort
	}

	form := osis.FormHTML
	if mode == passage.ModePlain {
		form = osis.FormPlain
	}
	bi := osis.BibleForm(t, t.OsisIDWork, form)

	out, err := passage.Format(bi, t, verseIDs, mode, titleStyle)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// HashCmd prints the content hash of a parsed translation.
type HashCmd struct {
	File string `arg:"" required:"" type:"path" help:"OSIS XML file to parse"`
}

func (c *HashCmd) Run() error {
	t, err := parseFile(c.File)
	if err != nil {
		return err
	}
	fmt.Println(string(contenthash.OfTranslation(t)))
	return nil
}

func parseFile(path string) (*osis.Translation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	runID := uuid.NewString()
	logging.ParseStarted(runID, path)

	return osis.ParseTranslation(data, runID)
}

func parseForm(s string) (osis.Form, error) {
	switch s {
	case "html":
		return osis.FormHTML, nil
	case "html-readers":
		return osis.FormHTMLReaders, nil
	case "html-notes":
		return osis.FormHTMLNotes, nil
	case "plain":
		return osis.FormPlain, nil
	case "plain-readers":
		return osis.FormPlainReaders, nil
	case "plain-notes":
		return osis.FormPlainNotes, nil
	default:
		return 0, fmt.Errorf("unknown form %q", s)
	}
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("osisbible"),
		kong.Description("Parse OSIS Bible XML into rendered, verse-addressable forms"),
		kong.UsageOnError(),
	)

	if CLI.Verbose {
		logging.InitLogger(logging.LevelDebug, logging.FormatText)
	}

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
