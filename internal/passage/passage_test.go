package passage

import (
	"strings"
	"testing"

	"github.com/sixforms/osisbible/internal/osis"
)

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<osis xmlns="http://www.bibletechnologies.net/2003/OSIS/namespace">
<osisText osisIDWork="KJV">
<div type="book" osisID="Gen">
<title short="Gen">Genesis</title>
<chapter osisID="Gen.1">
<p><verse osisID="Gen.1.1"/>In the beginning.<verse eID="Gen.1.1"/>
<verse osisID="Gen.1.2"/>And the earth was without form.<verse eID="Gen.1.2"/></p>
</chapter>
<chapter osisID="Gen.2">
<p><verse osisID="Gen.2.1"/>Thus the heavens and the earth were finished.<verse eID="Gen.2.1"/></p>
</chapter>
</div>
</osisText>
</osis>`

func parsedFixture(t *testing.T) *osis.Translation {
	t.Helper()
	tr, err := osis.ParseTranslation([]byte(fixture), "test-run")
	if err != nil {
		t.Fatalf("ParseTranslation: %v", err)
	}
	return tr
}

func TestFormat_HTML_SingleChapterRun(t *testing.T) {
	tr := parsedFixture(t)
	bi := osis.BibleForm(tr, tr.OsisIDWork, osis.FormHTML)

	out, err := Format(bi, tr, []int{1_001_001, 1_001_002}, ModeHTML, TitleFull)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "<h1>Genesis</h1>") {
		t.Errorf("missing title: %q", out)
	}
	if !strings.Contains(out, "<h2>Chapter 1</h2>") {
		t.Errorf("missing chapter heading: %q", out)
	}
	if !strings.Contains(out, "<p>") {
		t.Errorf("missing paragraph wrapper: %q", out)
	}
}

func TestFormat_SpansChapterBoundary(t *testing.T) {
	tr := parsedFixture(t)
	bi := osis.BibleForm(tr, tr.OsisIDWork, osis.FormHTML)

	out, err := Format(bi, tr, []int{1_001_002, 1_002_001}, ModeHTML, TitleFull)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "<h2>Chapter 1</h2>") || !strings.Contains(out, "<h2>Chapter 2</h2>") {
		t.Errorf("expected both chapter headings: %q", out)
	}
	if strings.Index(out, "Chapter 1") > strings.Index(out, "Chapter 2") {
		t.Errorf("chapter headings out of order: %q", out)
	}
}

func TestFormat_ShortTitle(t *testing.T) {
	tr := parsedFixture(t)
	bi := osis.BibleForm(tr, tr.OsisIDWork, osis.FormPlain)

	out, err := Format(bi, tr, []int{1_001_001}, ModePlain, TitleShort)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "Gen") {
		t.Errorf("expected short title Gen: %q", out)
	}
	if strings.Contains(out, "Genesis") {
		t.Errorf("short title mode should not use the full name: %q", out)
	}
}

func TestFormat_UnknownVerseID(t *testing.T) {
	tr := parsedFixture(t)
	bi := osis.BibleForm(tr, tr.OsisIDWork, osis.FormHTML)

	if _, err := Format(bi, tr, []int{99_099_099}, ModeHTML, TitleFull); err == nil {
		t.Error("expected error for a verse ID absent from the translation")
	}
}
