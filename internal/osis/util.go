package osis

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/sixforms/osisbible/internal/canon"
	"github.com/sixforms/osisbible/internal/errs"
)

// NamespaceOf returns the substring between a Clark-notation tag's leading
// "{" and its matching "}" — the namespace URI of an expanded tag name such
// as "{http://www.bibletechnologies.net/2003/OSIS/namespace}div". Returns ""
// if tag carries no "{...}" qualifier.
func NamespaceOf(tag string) string {
	if !strings.HasPrefix(tag, "{") {
		return ""
	}
	if i := strings.Index(tag, "}"); i >= 0 {
		return tag[1:i]
	}
	return ""
}

// StripNamespace drops a Clark-notation "{uri}local" or "prefix:local"
// namespace qualifier from a tag name, leaving the local name. xmlquery
// already separates namespace from local name on Node.Data for elements it
// parses, so this mostly guards against defensively-qualified input (e.g. a
// tag string read back out of an attribute value).
func StripNamespace(tag string) string {
	if i := strings.LastIndex(tag, "}"); i >= 0 {
		return tag[i+1:]
	}
	if i := strings.LastIndex(tag, ":"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// normalizeWhitespace replaces embedded newlines with a single space, the
// same normalization OSIS source text needs before it is safe to splice
// into a rendered buffer.
func normalizeWhitespace(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// TextOf returns an element's own text: the text immediately preceding its
// first child, with newlines normalized to spaces. For a leaf element this
// is simply all of its character content.
func TextOf(el *xmlquery.Node) string {
	if el == nil || el.FirstChild == nil || el.FirstChild.Type != xmlquery.TextNode {
		return ""
	}
	return normalizeWhitespace(el.FirstChild.Data)
}

// TailOf returns the text immediately following an element, before its next
// sibling element — the equivalent of ElementTree's .tail. xmlquery
// represents this as a TextNode sibling of the element itself.
func TailOf(el *xmlquery.Node) string {
	if el == nil || el.NextSibling == nil || el.NextSibling.Type != xmlquery.TextNode {
		return ""
	}
	return normalizeWhitespace(el.NextSibling.Data)
}

// TextAndTailOf concatenates an element's own text and its tail, in that
// order.
func TextAndTailOf(el *xmlquery.Node) string {
	return TextOf(el) + TailOf(el)
}

// OSISID is a parsed osisID reference: a book (by canonical OSIS
// abbreviation), chapter, and verse.
type OSISID struct {
	Book    canon.Book
	Chapter int
	Verse   int
}

// ParseOSISID splits an osisID attribute value of the form
// "Book.Chapter.Verse" into its three components and resolves the book
// against the canon table.
func ParseOSISID(osisID string) (OSISID, error) {
	parts := strings.Split(osisID, ".")
	if len(parts) != 3 {
		return OSISID{}, errs.NewParse("osisID", "expected exactly 3 dot-separated components in "+osisID)
	}

	book, err := canon.ByOSIS(parts[0])
	if err != nil {
		return OSISID{}, err
	}

	chapter, chErr := atoi(parts[1])
	verse, vErr := atoi(parts[2])
	if chErr != nil || vErr != nil {
		return OSISID{}, errs.NewParse("osisID", "non-numeric chapter or verse in "+osisID)
	}
	if chapter <= 0 || verse <= 0 {
		return OSISID{}, errs.NewParse("osisID", "non-positive chapter or verse in "+osisID)
	}

	return OSISID{Book: book, Chapter: chapter, Verse: verse}, nil
}

func atoi(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, errs.ErrMalformedOSISID
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errs.ErrMalformedOSISID
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
