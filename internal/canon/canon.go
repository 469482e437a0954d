// Package canon is the stand-in for the book/verse-id collaborator that the
// OSIS parser treats as an external dependency: it supplies the canonical
// 66-book Protestant ordering, the verse-ID arithmetic that encodes
// book/chapter/verse as a single int, and OSIS-abbreviation lookup.
package canon

import (
	"strconv"

	"github.com/sixforms/osisbible/internal/errs"
)

// Book describes one canonical book of the Bible.
type Book struct {
	// OSIS is the canonical OSIS abbreviation used in osisID attributes
	// (e.g. "Gen", "1Cor", "Rev").
	OSIS string
	// Name is the full English book name.
	Name string
	// Order is the book's 1-based position in the Protestant canon, used
	// directly as the book component of a verse ID.
	Order int
	// Testament is "OT" or "NT".
	Testament string
}

// Books lists all 66 canonical books in Protestant-canon order. The OSIS
// abbreviations match the set the source documents use in osisID
// attributes.
var Books = []Book{
	{"Gen", "Genesis", 1, "OT"},
	{"Exod", "Exodus", 2, "OT"},
	{"Lev", "Leviticus", 3, "OT"},
	{"Num", "Numbers", 4, "OT"},
	{"Deut", "Deuteronomy", 5, "OT"},
	{"Josh", "Joshua", 6, "OT"},
	{"Judg", "Judges", 7, "OT"},
	{"Ruth", "Ruth", 8, "OT"},
	{"1Sam", "1 Samuel", 9, "OT"},
	{"2Sam", "2 Samuel", 10, "OT"},
	{"1Kgs", "1 Kings", 11, "OT"},
	{"2Kgs", "2 Kings", 12, "OT"},
	{"1Chr", "1 Chronicles", 13, "OT"},
	{"2Chr", "2 Chronicles", 14, "OT"},
	{"Ezra", "Ezra", 15, "OT"},
	{"Neh", "Nehemiah", 16, "OT"},
	{"Esth", "Esther", 17, "OT"},
	{"Job", "Job", 18, "OT"},
	{"Ps", "Psalms", 19, "OT"},
	{"Prov", "Proverbs", 20, "OT"},
	{"Eccl", "Ecclesiastes", 21, "OT"},
	{"Song", "Song of Solomon", 22, "OT"},
	{"Isa", "Isaiah", 23, "OT"},
	{"Jer", "Jeremiah", 24, "OT"},
	{"Lam", "Lamentations", 25, "OT"},
	{"Ezek", "Ezekiel", 26, "OT"},
	{"Dan", "Daniel", 27, "OT"},
	{"Hos", "Hosea", 28, "OT"},
	{"Joel", "Joel", 29, "OT"},
	{"Amos", "Amos", 30, "OT"},
	{"Obad", "Obadiah", 31, "OT"},
	{"Jonah", "Jonah", 32, "OT"},
	{"Mic", "Micah", 33, "OT"},
	{"Nah", "Nahum", 34, "OT"},
	{"Hab", "Habakkuk", 35, "OT"},
	{"Zeph", "Zephaniah", 36, "OT"},
	{"Hag", "Haggai", 37, "OT"},
	{"Zech", "Zechariah", 38, "OT"},
	{"Mal", "Malachi", 39, "OT"},
	{"Matt", "Matthew", 40, "NT"},
	{"Mark", "Mark", 41, "NT"},
	{"Luke", "Luke", 42, "NT"},
	{"John", "John", 43, "NT"},
	{"Acts", "Acts", 44, "NT"},
	{"Rom", "Romans", 45, "NT"},
	{"1Cor", "1 Corinthians", 46, "NT"},
	{"2Cor", "2 Corinthians", 47, "NT"},
	{"Gal", "Galatians", 48, "NT"},
	{"Eph", "Ephesians", 49, "NT"},
	{"Phil", "Philippians", 50, "NT"},
	{"Col", "Colossians", 51, "NT"},
	{"1Thess", "1 Thessalonians", 52, "NT"},
	{"2Thess", "2 Thessalonians", 53, "NT"},
	{"1Tim", "1 Timothy", 54, "NT"},
	{"2Tim", "2 Timothy", 55, "NT"},
	{"Titus", "Titus", 56, "NT"},
	{"Phlm", "Philemon", 57, "NT"},
	{"Heb", "Hebrews", 58, "NT"},
	{"Jas", "James", 59, "NT"},
	{"1Pet", "1 Peter", 60, "NT"},
	{"2Pet", "2 Peter", 61, "NT"},
	{"1John", "1 John", 62, "NT"},
	{"2John", "2 John", 63, "NT"},
	{"3John", "3 John", 64, "NT"},
	{"Jude", "Jude", 65, "NT"},
	{"Rev", "Revelation", 66, "NT"},
}

var (
	byOSIS  map[string]Book
	byOrder map[int]Book
)

func init() {
	byOSIS = make(map[string]Book, len(Books))
	byOrder = make(map[int]Book, len(Books))
	for _, b := range Books {
		byOSIS[b.OSIS] = b
		byOrder[b.Order] = b
	}
}

// ByOSIS looks up a book by its canonical OSIS abbreviation.
func ByOSIS(osisID string) (Book, error) {
	b, ok := byOSIS[osisID]
	if !ok {
		return Book{}, errs.NewBook(osisID)
	}
	return b, nil
}

// ByOrder looks up a book by its 1-based canon order.
func ByOrder(order int) (Book, error) {
	b, ok := byOrder[order]
	if !ok {
		return Book{}, errs.NewBook(fmtOrder(order))
	}
	return b, nil
}

// verseIDBookFactor and verseIDChapterFactor fix the encoding so that
// VerseIDOf(book, chapter, verse) == book.Order*1_000_000 + chapter*1_000 + verse,
// matching the worked examples in the parser's specification (e.g. Mark
// 9:38 -> 41009038, 1 Chronicles 16:8 -> 13016008).
const (
	verseIDBookFactor    = 1_000_000
	verseIDChapterFactor = 1_000
)

// VerseIDOf encodes a book/chapter/verse triple as a single monotonically
// increasing integer ID.
func VerseIDOf(bookOrder, chapter, verse int) int {
	return bookOrder*verseIDBookFactor + chapter*verseIDChapterFactor + verse
}

// BookChapterVerseOf decodes a verse ID back into its book order, chapter,
// and verse components.
func BookChapterVerseOf(verseID int) (bookOrder, chapter, verse int) {
	bookOrder = verseID / verseIDBookFactor
	rem := verseID % verseIDBookFactor
	chapter = rem / verseIDChapterFactor
	verse = rem % verseIDChapterFactor
	return bookOrder, chapter, verse
}

// IsValidVerseID reports whether verseID decodes to a known book and a
// chapter/verse that is at least plausible (both positive, and within the
// book's order range).
//
// This is an approximation: without the Crosswire-style versification table
// (exact verse counts per chapter per book), precise range checking against
// a translation's actual content is instead the job of Bible.GetScripture,
// which validates against the start/end indices the parser actually
// recorded for a given translation.
func IsValidVerseID(verseID int) bool {
	bookOrder, chapter, verse := BookChapterVerseOf(verseID)
	if _, err := ByOrder(bookOrder); err != nil {
		return false
	}
	return chapter > 0 && verse > 0
}

func fmtOrder(order int) string {
	return "order:" + strconv.Itoa(order)
}
