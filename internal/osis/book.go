package osis

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"

	"github.com/sixforms/osisbible/internal/cache"
	"github.com/sixforms/osisbible/internal/canon"
	"github.com/sixforms/osisbible/internal/logging"
)

// idCache memoizes ParseOSISID. Within one walk each start marker's osisID
// is parsed once (end markers carry eID, which is never parsed), so hits
// come from the same IDs being parsed again later in the process, e.g. when
// a document is parsed more than once. Memoization is an optimization only:
// correctness never depends on the cache being warm.
var idCache = cache.NewLRUCache[string, OSISID](cache.DefaultConfig())

func parseOSISIDCached(osisID string) (OSISID, error) {
	if v, ok := idCache.Get(osisID); ok {
		return v, nil
	}
	v, err := ParseOSISID(osisID)
	if err != nil {
		return OSISID{}, err
	}
	idCache.Put(osisID, v)
	return v, nil
}

// BookResult holds one book's six rendered buffers, their verse-level
// start/end byte-offset indices, and the book metadata the translation
// parser accumulates (title, max verse per chapter).
type BookResult struct {
	OSISID     string
	Title      string
	ShortTitle string
	Buffers    [numForms]string
	Starts     [numForms]map[int]int
	Ends       [numForms]map[int]int
	MaxVerses  map[int]int
	Unknown    map[string]struct{}
}

// bookState is the mutable state threaded through one book's tree walk.
type bookState struct {
	runID  string
	osisID string

	buf          [numForms]strings.Builder
	baseOffset   [numForms]int
	starts       [numForms]map[int]int
	ends         [numForms]map[int]int
	currentVerse int
	maxVerses    map[int]int

	title      string
	shortTitle string
	unknown    map[string]struct{}
}

func newBookState(osisID string, runID string, baseOffset [numForms]int) *bookState {
	b := &bookState{
		runID:      runID,
		osisID:     osisID,
		baseOffset: baseOffset,
		maxVerses:  make(map[int]int),
		unknown:    make(map[string]struct{}),
	}
	for f := Form(0); f < numForms; f++ {
		b.starts[f] = make(map[int]int)
		b.ends[f] = make(map[int]int)
	}
	return b
}

// ParseBook walks the subtree rooted at a book div (as located by the
// translation parser's XPath book lookup) and renders it into the six
// buffers. Recorded verse start/end offsets already include baseOffset (the
// running byte length of each buffer across all books parsed so far in the
// translation), so they index the translation-level buffers directly.
func ParseBook(root *xmlquery.Node, osisID string, runID string, baseOffset [numForms]int) (*BookResult, error) {
	b := newBookState(osisID, runID, baseOffset)

	if err := b.processElement(root, false); err != nil {
		return nil, err
	}
	b.closeVerse()

	return b.result(), nil
}

func (b *bookState) result() *BookResult {
	r := &BookResult{
		OSISID:     b.osisID,
		Title:      b.title,
		ShortTitle: b.shortTitle,
		MaxVerses:  b.maxVerses,
		Unknown:    b.unknown,
	}
	for f := Form(0); f < numForms; f++ {
		r.Buffers[f] = b.buf[f].String()
		r.Starts[f] = b.starts[f]
		r.Ends[f] = b.ends[f]
	}
	return r
}

func (b *bookState) offset(f Form) int {
	return b.baseOffset[f] + b.buf[f].Len()
}

// closeVerse flushes the end-offset of the currently open verse, if any.
// Called when a new verse opens, a chapter boundary is crossed, or the book
// ends.
func (b *bookState) closeVerse() {
	if b.currentVerse == 0 {
		return
	}
	for f := Form(0); f < numForms; f++ {
		b.ends[f][b.currentVerse] = b.offset(f)
	}
}

func (b *bookState) openVerse(verseID int) {
	for f := Form(0); f < numForms; f++ {
		b.starts[f][verseID] = b.offset(f)
	}
	b.currentVerse = verseID
}

// processElement dispatches on an element's stripped tag name and carries
// out the per-tag append/recurse/append-tail behavior the rendering
// algorithm defines for it.
func (b *bookState) processElement(el *xmlquery.Node, inNotes bool) error {
	tag := StripNamespace(el.Data)

	switch tag {
	case "div", "lg", "l", "list", "item", "divineName":
		b.appendText(TextOf(el), inNotes, true)
		if err := b.walkChildren(el, inNotes); err != nil {
			return err
		}
		b.appendText(TailOf(el), inNotes, true)

	case "note":
		if err := b.walkChildren(el, true); err != nil {
			return err
		}
		b.appendText(TailOf(el), inNotes, true)

	case "rdg":
		if inNotes {
			b.appendText(TextOf(el), true, true)
		}

	case "p":
		b.openParagraph()
		if err := b.walkChildren(el, false); err != nil {
			return err
		}
		b.closeParagraph()

	case "chapter":
		b.closeVerse()
		b.currentVerse = 0
		if err := b.walkChildren(el, inNotes); err != nil {
			return err
		}

	case "title":
		b.handleTitle(el)

	case "verse":
		if err := b.handleVerse(el, inNotes); err != nil {
			return err
		}

	case "q":
		b.appendText(TextOf(el), inNotes, true)
		if err := b.walkChildren(el, inNotes); err != nil {
			return err
		}
		b.appendText(TailOf(el), inNotes, true)

	case "seg":
		if err := b.walkChildren(el, inNotes); err != nil {
			return err
		}
		b.appendText(TailOf(el), inNotes, true)

	case "w", "lb":
		b.appendText(TextAndTailOf(el), inNotes, true)

	case "transChange":
		b.handleTransChange(el, inNotes)

	default:
		b.unknown[tag] = struct{}{}
		logging.UnknownTag(b.runID, b.osisID, tag)
	}

	return nil
}

func (b *bookState) walkChildren(el *xmlquery.Node, inNotes bool) error {
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			if err := b.processElement(c, inNotes); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *bookState) openParagraph() {
	for f := Form(0); f < numForms; f++ {
		if f.IsHTML() {
			b.buf[f].WriteString("<p>")
		} else {
			b.buf[f].WriteString("\n")
		}
	}
}

func (b *bookState) closeParagraph() {
	for f := Form(0); f < numForms; f++ {
		if f.IsHTML() {
			b.buf[f].WriteString("</p>")
		}
	}
}

func (b *bookState) handleTitle(el *xmlquery.Node) {
	if b.title != "" && b.shortTitle != "" {
		return
	}
	b.title = TextOf(el)
	b.shortTitle = el.SelectAttr("short")
}

// handleVerse is the hinge of the whole algorithm: it closes out whatever
// verse was open, opens the new one (computing its verse ID via the canon
// collaborator), records the per-chapter maximum verse, emits the rendered
// verse marker, and then treats its own text/tail/children exactly like any
// other tag. An element with no osisID is a closing marker only: it leaves
// the currently open verse untouched.
func (b *bookState) handleVerse(el *xmlquery.Node, inNotes bool) error {
	osisID := el.SelectAttr("osisID")
	if osisID != "" {
		id, err := parseOSISIDCached(osisID)
		if err != nil {
			return fmt.Errorf("verse %q in %s: %w", osisID, b.osisID, err)
		}

		b.closeVerse()
		verseID := canon.VerseIDOf(id.Book.Order, id.Chapter, id.Verse)
		b.openVerse(verseID)

		if id.Verse > b.maxVerses[id.Chapter] {
			b.maxVerses[id.Chapter] = id.Verse
		}

		b.emitVerseMarker(id.Verse)
	}

	b.appendText(TextOf(el), inNotes, true)
	b.appendText(TailOf(el), inNotes, true)

	return b.walkChildren(el, inNotes)
}

// emitVerseMarker writes the rendered verse-number marker to the
// scholar and notes buffers only; readers buffers never show verse numbers.
// The leading-space decision for a marker is evaluated independently per
// buffer and uses a different set of no-space suffixes than ordinary text
// appends: in HTML forms "</p>", "<p>" and "<br/>" (an opening <p>
// suppresses the space, since a marker can legitimately open a paragraph),
// in plain forms only "\n".
func (b *bookState) emitVerseMarker(verse int) {
	for f := Form(0); f < numForms; f++ {
		if f.IsReaders() {
			continue
		}
		s := b.buf[f].String()
		if f.IsHTML() {
			if len(s) > 0 && !hasAnySuffix(s, "</p>", "<p>", "<br/>") {
				b.buf[f].WriteByte(' ')
			}
			fmt.Fprintf(&b.buf[f], "<sup>%d</sup>", verse)
		} else {
			if len(s) > 0 && !strings.HasSuffix(s, "\n") {
				b.buf[f].WriteByte(' ')
			}
			fmt.Fprintf(&b.buf[f], "%d.", verse)
		}
	}
}

// handleTransChange brackets supplied/translator-added words in the
// scholar and notes forms ("[word]"), while the readers forms receive the
// bare word with no brackets at all.
func (b *bookState) handleTransChange(el *xmlquery.Node, inNotes bool) {
	b.appendText("[", inNotes, false)
	b.appendText(TextOf(el), inNotes, true)
	b.walkChildren(el, inNotes)
	b.appendText("]", inNotes, false)
	b.appendText(TailOf(el), inNotes, true)
}

// appendText is the one place that actually writes prose into the render
// buffers. It trims and strips stray pilcrow markers from raw, decides
// whether a leading space is needed (independently per target buffer, since
// buffers diverge in content), and then writes to:
//
//   - both notes buffers, always;
//   - the four non-notes buffers (scholar + readers), but only when
//     inNotes is false, and among those, the readers pair only when
//     includeReaders is true (transChange brackets pass false so the
//     readers forms see the unbracketed word only, written by a separate
//     call).
func (b *bookState) appendText(raw string, inNotes bool, includeReaders bool) {
	t := strings.TrimSpace(raw)
	t = strings.ReplaceAll(t, "Â¶", "")
	t = strings.ReplaceAll(t, "¶", "")
	if t == "" {
		return
	}

	forceSpace := t == "["
	r, _ := utf8.DecodeRuneInString(t)
	wantsSpace := forceSpace || isLetterRune(r)

	write := func(f Form) {
		buf := &b.buf[f]
		if forceSpace {
			buf.WriteByte(' ')
		} else if wantsSpace && buf.Len() > 0 && !hasAnySuffix(buf.String(), "</p>", "<br/>", "\n", "[") {
			buf.WriteByte(' ')
		}
		buf.WriteString(t)
	}

	for f := Form(0); f < numForms; f++ {
		switch {
		case f.IsNotes():
			write(f) // notes forms receive everything, regardless of inNotes
		case inNotes:
			continue
		case f.IsReaders() && !includeReaders:
			continue
		default:
			write(f)
		}
	}
}

func isLetterRune(r rune) bool {
	return unicode.IsLetter(r)
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
