package contenthash

import (
	"testing"

	"github.com/sixforms/osisbible/internal/osis"
)

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<osis xmlns="http://www.bibletechnologies.net/2003/OSIS/namespace">
<osisText osisIDWork="KJV">
<div type="book" osisID="Gen">
<title short="Gen">Genesis</title>
<chapter osisID="Gen.1">
<p><verse osisID="Gen.1.1"/>In the beginning.<verse eID="Gen.1.1"/></p>
</chapter>
</div>
</osisText>
</osis>`

func TestOfTranslation_Deterministic(t *testing.T) {
	t1, err := osis.ParseTranslation([]byte(fixture), "run-1")
	if err != nil {
		t.Fatalf("ParseTranslation: %v", err)
	}
	t2, err := osis.ParseTranslation([]byte(fixture), "run-2")
	if err != nil {
		t.Fatalf("ParseTranslation: %v", err)
	}

	h1 := OfTranslation(t1)
	h2 := OfTranslation(t2)
	if h1 != h2 {
		t.Errorf("identical input produced different hashes: %s != %s", h1, h2)
	}
	if h1 == "" {
		t.Error("expected non-empty hash")
	}
}

func TestOfSource_DiffersOnChange(t *testing.T) {
	h1 := OfSource([]byte(fixture))
	h2 := OfSource([]byte(fixture + "\n"))
	if h1 == h2 {
		t.Error("differing source bytes produced the same hash")
	}
}

func TestOfSource_Deterministic(t *testing.T) {
	h1 := OfSource([]byte(fixture))
	h2 := OfSource([]byte(fixture))
	if h1 != h2 {
		t.Errorf("identical source produced different hashes: %s != %s", h1, h2)
	}
}
