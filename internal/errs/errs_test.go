package errs

import "testing"

func TestBookError_UnwrapsToSentinel(t *testing.T) {
	err := NewBook("Xyz")
	if !Is(err, ErrUnknownBook) {
		t.Errorf("expected NewBook error to unwrap to ErrUnknownBook")
	}
	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}

func TestVerseRangeError_UnwrapsToSentinel(t *testing.T) {
	err := NewVerseRange(41009038, 41009041)
	if !Is(err, ErrInvalidVerseID) {
		t.Errorf("expected NewVerseRange error to unwrap to ErrInvalidVerseID")
	}
	var vr *VerseRangeError
	if !As(err, &vr) {
		t.Fatal("expected errors.As to find a *VerseRangeError")
	}
	if vr.StartVerseID != 41009038 || vr.EndVerseID != 41009041 {
		t.Errorf("got %+v", vr)
	}
}

func TestParseError_UnwrapsToSentinel(t *testing.T) {
	if err := NewParse("osisID", "bad format"); !Is(err, ErrMalformedOSISID) {
		t.Errorf("expected NewParse(\"osisID\", ...) to unwrap to ErrMalformedOSISID")
	}
	if err := NewParse("xml", "bad format"); !Is(err, ErrMalformedXML) {
		t.Errorf("expected NewParse(\"xml\", ...) to unwrap to ErrMalformedXML")
	}
	if err := NewParse("osis", "no book divs"); !Is(err, ErrMalformedXML) {
		t.Errorf("expected NewParse(\"osis\", ...) to unwrap to ErrMalformedXML by default")
	}
}

func TestWrap_NilIsNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("expected Wrap(nil, ...) to return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("expected Wrapf(nil, ...) to return nil")
	}
}

func TestWrap_PreservesUnwrap(t *testing.T) {
	base := NewBook("Xyz")
	wrapped := Wrap(base, "locating book div")
	if !Is(wrapped, ErrUnknownBook) {
		t.Error("expected wrapped error to still unwrap to ErrUnknownBook")
	}
}
