package osis

import (
	"testing"

	"github.com/sixforms/osisbible/internal/errs"
)

func TestParseOSISID_Valid(t *testing.T) {
	id, err := ParseOSISID("Gen.1.1")
	if err != nil {
		t.Fatalf("ParseOSISID: %v", err)
	}
	if id.Chapter != 1 || id.Verse != 1 || id.Book.OSIS != "Gen" {
		t.Errorf("got %+v", id)
	}
}

func TestParseOSISID_WrongShape(t *testing.T) {
	_, err := ParseOSISID("Gen.1")
	if err == nil {
		t.Fatal("expected error for wrong number of components")
	}
	if !errs.Is(err, errs.ErrMalformedOSISID) {
		t.Errorf("expected ErrMalformedOSISID, got %v", err)
	}
}

func TestParseOSISID_NonNumeric(t *testing.T) {
	_, err := ParseOSISID("Gen.a.1")
	if !errs.Is(err, errs.ErrMalformedOSISID) {
		t.Errorf("expected ErrMalformedOSISID, got %v", err)
	}
}

func TestParseOSISID_NonPositive(t *testing.T) {
	cases := []string{"Gen.0.5", "Gen.5.0", "Gen.-1.5"}
	for _, osisID := range cases {
		_, err := ParseOSISID(osisID)
		if err == nil {
			t.Errorf("%q: expected error for non-positive chapter/verse", osisID)
			continue
		}
		if !errs.Is(err, errs.ErrMalformedOSISID) {
			t.Errorf("%q: expected ErrMalformedOSISID, got %v", osisID, err)
		}
	}
}

func TestParseOSISID_UnknownBook(t *testing.T) {
	_, err := ParseOSISID("Xyz.1.1")
	if !errs.Is(err, errs.ErrUnknownBook) {
		t.Errorf("expected ErrUnknownBook, got %v", err)
	}
}

func TestNamespaceOf(t *testing.T) {
	cases := map[string]string{
		"{http://www.bibletechnologies.net/2003/OSIS/namespace}div": "http://www.bibletechnologies.net/2003/OSIS/namespace",
		"div":      "",
		"osis:div": "",
		"{}div":    "",
	}
	for tag, want := range cases {
		if got := NamespaceOf(tag); got != want {
			t.Errorf("NamespaceOf(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestStripNamespace(t *testing.T) {
	cases := map[string]string{
		"{http://www.bibletechnologies.net/2003/OSIS/namespace}div": "div",
		"osis:div": "div",
		"div":      "div",
	}
	for tag, want := range cases {
		if got := StripNamespace(tag); got != want {
			t.Errorf("StripNamespace(%q) = %q, want %q", tag, got, want)
		}
	}
}
