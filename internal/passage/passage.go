// Package passage formats a sequence of verse IDs into a readable passage:
// grouped by book and chapter (preserving input order), with a title per
// book and a chapter heading per chapter, in either HTML or plain-text mode.
package passage

import (
	"fmt"
	"strings"

	"github.com/sixforms/osisbible/internal/canon"
	"github.com/sixforms/osisbible/internal/osis"
)

// Mode selects HTML or plain-text rendering.
type Mode int

const (
	ModeHTML Mode = iota
	ModePlain
)

// TitleStyle selects full book titles or their short form.
type TitleStyle int

const (
	TitleFull TitleStyle = iota
	TitleShort
)

// Format groups verseIDs by book and chapter in input order and renders
// them as a single passage string.
func Format(bi *osis.Bible, translation *osis.Translation, verseIDs []int, mode Mode, titleStyle TitleStyle) (string, error) {
	var out strings.Builder

	lastBook := -1
	lastChapter := -1
	firstBook := true

	for i := 0; i < len(verseIDs); {
		bookOrder, chapter, _ := canon.BookChapterVerseOf(verseIDs[i])

		if bookOrder != lastBook {
			book, err := canon.ByOrder(bookOrder)
			if err != nil {
				return "", err
			}
			title := translation.Titles[book.OSIS]
			if titleStyle == TitleShort {
				title = book.OSIS
			}
			if title == "" {
				title = book.Name
			}
			out.WriteString(formatTitle(title, mode, firstBook))
			lastBook = bookOrder
			lastChapter = -1
			firstBook = false
		}

		if chapter != lastChapter {
			out.WriteString(formatChapter(chapter, mode))
			lastChapter = chapter
		}

		// Collect a contiguous run of verses within this book/chapter into
		// one paragraph, then let the accessor render the joined text.
		j := i
		for j < len(verseIDs) {
			bo, ch, _ := canon.BookChapterVerseOf(verseIDs[j])
			if bo != bookOrder || ch != chapter {
				break
			}
			j++
		}

		text, err := bi.GetScripture(verseIDs[i], verseIDs[j-1])
		if err != nil {
			return "", err
		}
		out.WriteString(formatParagraph(text, mode))

		i = j
	}

	return out.String(), nil
}

func formatTitle(title string, mode Mode, first bool) string {
	if mode == ModeHTML {
		return fmt.Sprintf("<h1>%s</h1>\n", title)
	}
	if first {
		return fmt.Sprintf("%s\n\n", title)
	}
	return fmt.Sprintf("\n\n%s\n\n", title)
}

func formatChapter(chapter int, mode Mode) string {
	if mode == ModeHTML {
		return fmt.Sprintf("<h2>Chapter %d</h2>\n", chapter)
	}
	return fmt.Sprintf("Chapter %d\n\n", chapter)
}

func formatParagraph(text string, mode Mode) string {
	if mode == ModeHTML {
		return fmt.Sprintf("<p>%s</p>\n", text)
	}
	return fmt.Sprintf("   %s\n", text)
}
