// Package humanref parses human-readable scripture references like
// "Gen 1:1", "1 Chr 16:8", "Mark 9:38-41", or "John 3" into the book,
// chapter, and verse range they name.
package humanref

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/sixforms/osisbible/internal/canon"
	"github.com/sixforms/osisbible/internal/errs"
)

// Reference is a parsed scripture reference: a book plus a chapter, and
// either a single verse, a verse range within that chapter, or no verse at
// all (a whole-chapter reference).
// Reference is matched token-type-by-token-type rather than via a single
// greedy repetition: Number and Word are distinct lexer token kinds, so
// "1 Cor 11:5" unambiguously splits into an optional leading book number,
// one or two book-name words, the chapter number, and an optional
// verse/verse-end pair, with no backtracking required.
type Reference struct {
	BookNumber *string `@Number?`
	BookWord   string  `@Word`
	BookWord2  *string `@Word?`
	Chapter    int     `@Number`
	Verse      *int    `(":" @Number)?`
	VerseEnd   *int    `("-" @Number)?`
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `[-\x{2013}\x{2014}]`}, // hyphen, en dash, em dash
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var refParser = participle.MustBuild[Reference](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Range is the resolved result of parsing a human reference: a book and an
// inclusive chapter/verse span, expressed as the two verse IDs that bound
// it.
type Range struct {
	Book         canon.Book
	Chapter      int
	Verse        int // 0 if the reference names no specific verse
	VerseEnd     int // equals Verse when the reference is a single verse
	StartVerseID int
	EndVerseID   int
}

// Parse parses a human-readable scripture reference string.
func Parse(input string) (Range, error) {
	normalized := normalize(input)

	ref, err := refParser.ParseString("", normalized)
	if err != nil {
		return Range{}, errs.NewParse("reference", err.Error())
	}

	var nameParts []string
	if ref.BookNumber != nil {
		nameParts = append(nameParts, *ref.BookNumber)
	}
	nameParts = append(nameParts, ref.BookWord)
	if ref.BookWord2 != nil {
		nameParts = append(nameParts, *ref.BookWord2)
	}

	book, err := canon.Resolve(strings.Join(nameParts, " "))
	if err != nil {
		return Range{}, err
	}

	if ref.Verse == nil && ref.VerseEnd != nil {
		// The grammar alone can't tell "Gen 1-5" (a chapter range, which
		// this parser doesn't resolve on its own) from a malformed verse
		// range missing its start; reject rather than silently guess.
		return Range{}, errs.NewParse("reference", "dash without a preceding verse number in "+input)
	}

	r := Range{Book: book, Chapter: ref.Chapter}

	switch {
	case ref.Verse == nil:
		// Whole-chapter reference: no verse counts are available here, so
		// both verse IDs point at verse 1 of the chapter and Verse/VerseEnd
		// stay 0; the rest of the chapter is not covered by the IDs.
		r.StartVerseID = canon.VerseIDOf(book.Order, ref.Chapter, 1)
		r.EndVerseID = r.StartVerseID
	case ref.VerseEnd == nil:
		r.Verse = *ref.Verse
		r.VerseEnd = *ref.Verse
		r.StartVerseID = canon.VerseIDOf(book.Order, ref.Chapter, r.Verse)
		r.EndVerseID = r.StartVerseID
	default:
		r.Verse = *ref.Verse
		r.VerseEnd = *ref.VerseEnd
		r.StartVerseID = canon.VerseIDOf(book.Order, ref.Chapter, r.Verse)
		r.EndVerseID = canon.VerseIDOf(book.Order, ref.Chapter, r.VerseEnd)
	}

	return r, nil
}

// normalize turns "Gen.1.1" style dotted references into the colon form the
// grammar expects, and collapses the various dash glyphs callers might type
// for a verse range.
func normalize(input string) string {
	s := strings.TrimSpace(input)
	// "Book.Chapter.Verse" -> "Book Chapter:Verse"
	if strings.Count(s, ".") >= 2 {
		parts := strings.SplitN(s, ".", 3)
		s = parts[0] + " " + parts[1] + ":" + parts[2]
	}
	// En dash and em dash -> hyphen, the only dash the grammar matches.
	s = strings.NewReplacer("–", "-", "—", "-").Replace(s)
	return s
}
