package osis

import (
	"strings"

	"github.com/sixforms/osisbible/internal/canon"
	"github.com/sixforms/osisbible/internal/errs"
	"github.com/sixforms/osisbible/internal/logging"
)

// Bible is an immutable view over one rendered form of a parsed
// translation: its content, and the verse-level start/end byte offsets into
// it. It makes no decisions beyond validation and the form-appropriate
// cleanup below; all spacing and numbering was baked into content at parse
// time.
type Bible struct {
	Version string
	Content string
	Starts  map[int]int
	Ends    map[int]int
	IsHTML  bool
}

// BibleForm builds a Bible view over one of a parsed Translation's six
// rendered forms.
func BibleForm(t *Translation, version string, f Form) *Bible {
	return &Bible{
		Version: version,
		Content: t.Buffers[f],
		Starts:  t.Starts[f],
		Ends:    t.Ends[f],
		IsHTML:  f.IsHTML(),
	}
}

// GetScripture returns the cleaned text of a verse or verse range. If
// endVerseID is zero it defaults to startVerseID.
func (bi *Bible) GetScripture(startVerseID, endVerseID int) (string, error) {
	if startVerseID == 0 {
		return "", errs.NewVerseRange(startVerseID, endVerseID)
	}
	if endVerseID == 0 {
		endVerseID = startVerseID
	}

	if !canon.IsValidVerseID(startVerseID) || !canon.IsValidVerseID(endVerseID) {
		return "", errs.NewVerseRange(startVerseID, endVerseID)
	}

	start, ok := bi.Starts[startVerseID]
	if !ok {
		return "", errs.NewVerseRange(startVerseID, endVerseID)
	}
	end, ok := bi.Ends[endVerseID]
	if !ok {
		return "", errs.NewVerseRange(startVerseID, endVerseID)
	}
	if start > end || start > len(bi.Content) || end > len(bi.Content) {
		return "", errs.NewVerseRange(startVerseID, endVerseID)
	}

	logging.ScriptureAccess(startVerseID, endVerseID, formName(bi.IsHTML))

	raw := bi.Content[start:end]
	if bi.IsHTML {
		return cleanHTML(raw), nil
	}
	return strings.TrimSpace(raw), nil
}

func formName(isHTML bool) string {
	if isHTML {
		return "html"
	}
	return "plain"
}

// cleanHTML trims whitespace, drops a trailing "<p>" with no matching
// close, ensures the result is wrapped in a single <p>...</p>, and collapses
// the degenerate outputs of an empty/boundary selection to the empty
// string.
func cleanHTML(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "<p>")

	if !strings.HasPrefix(s, "<p>") {
		s = "<p>" + s
	}
	if !strings.HasSuffix(s, "</p>") {
		s = s + "</p>"
	}

	switch s {
	case "", "<p></p>", "</p><p>":
		return ""
	default:
		return s
	}
}
