package osis

import (
	"fmt"
	"time"

	"github.com/sixforms/osisbible/internal/canon"
	"github.com/sixforms/osisbible/internal/errs"
	"github.com/sixforms/osisbible/internal/logging"
	"github.com/sixforms/osisbible/internal/xmltree"
)

// bookXPath locates a book's div by its canonical osisID, mirroring the
// translation-level parser's book lookup.
const bookXPath = "//div[@osisID='%s']"

// Translation is the parsed, sealed result of rendering an entire OSIS
// document: the six concatenated buffers across all books, the verse-level
// start/end indices into them, and per-book metadata.
type Translation struct {
	OsisIDWork string
	Buffers    [numForms]string
	Starts     [numForms]map[int]int
	Ends       [numForms]map[int]int
	Titles     map[string]string // book OSIS ID -> title
	MaxVerses  map[string]map[int]int
	Unknown    map[string]struct{}
}

// ParseTranslation parses a full OSIS document: it walks the canon in
// order, finds each book's div via XPath, and runs the book parser against
// it with running byte offsets so verse IDs accumulate into one continuous
// set of six buffers.
func ParseTranslation(data []byte, runID string) (*Translation, error) {
	start := time.Now()

	if verrs := xmltree.Validate(data); len(verrs) > 0 {
		return nil, errs.NewParse("xml", verrs[0].Message)
	}

	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, errs.Wrap(err, "parsing OSIS document")
	}

	osisIDWork := ""
	if work, err := doc.XPathFirst("//osisText"); err == nil && work != nil {
		osisIDWork = work.SelectAttr("osisIDWork")
	}

	t := &Translation{
		OsisIDWork: osisIDWork,
		Titles:     make(map[string]string),
		MaxVerses:  make(map[string]map[int]int),
		Unknown:    make(map[string]struct{}),
	}
	for f := Form(0); f < numForms; f++ {
		t.Starts[f] = make(map[int]int)
		t.Ends[f] = make(map[int]int)
	}

	var offset [numForms]int
	bookCount, verseCount := 0, 0

	for _, book := range canon.Books {
		root, err := doc.XPathFirst(fmt.Sprintf(bookXPath, book.OSIS))
		if err != nil {
			return nil, errs.Wrapf(err, "locating book div for %s", book.OSIS)
		}
		if root == nil {
			continue // translation doesn't include this book; not an error
		}

		result, err := ParseBook(root, book.OSIS, runID, offset)
		if err != nil {
			logging.ParseError(runID, book.OSIS, err)
			return nil, errs.Wrapf(err, "parsing book %s", book.OSIS)
		}

		for f := Form(0); f < numForms; f++ {
			t.Buffers[f] += result.Buffers[f]
			for verseID, pos := range result.Starts[f] {
				t.Starts[f][verseID] = pos
			}
			for verseID, pos := range result.Ends[f] {
				t.Ends[f][verseID] = pos
			}
			offset[f] += len(result.Buffers[f])
		}

		if result.Title != "" {
			t.Titles[book.OSIS] = result.Title
		}
		if len(result.MaxVerses) > 0 {
			t.MaxVerses[book.OSIS] = result.MaxVerses
		}
		for tag := range result.Unknown {
			t.Unknown[tag] = struct{}{}
		}

		bookCount++
		verseCount += len(result.Starts[FormHTML])
	}

	if bookCount == 0 {
		return nil, errs.NewParse("osis", "document contained no recognized book divs")
	}

	logging.ParseCompleted(runID, bookCount, verseCount, time.Since(start))
	return t, nil
}
