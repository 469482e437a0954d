package canon

import "testing"

func TestVerseIDOf_WorkedExamples(t *testing.T) {
	tests := []struct {
		name    string
		book    string
		chapter int
		verse   int
		want    int
	}{
		{"Mark 9:38", "Mark", 9, 38, 41009038},
		{"1 Chronicles 16:8", "1Chr", 16, 8, 13016008},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ByOSIS(tt.book)
			if err != nil {
				t.Fatalf("ByOSIS(%q): %v", tt.book, err)
			}
			got := VerseIDOf(b.Order, tt.chapter, tt.verse)
			if got != tt.want {
				t.Errorf("VerseIDOf(%d, %d, %d) = %d, want %d", b.Order, tt.chapter, tt.verse, got, tt.want)
			}
		})
	}
}

func TestBookChapterVerseOf_RoundTrip(t *testing.T) {
	id := VerseIDOf(41, 9, 38)
	bookOrder, chapter, verse := BookChapterVerseOf(id)
	if bookOrder != 41 || chapter != 9 || verse != 38 {
		t.Errorf("BookChapterVerseOf(%d) = (%d, %d, %d), want (41, 9, 38)", id, bookOrder, chapter, verse)
	}
}

func TestResolve_Aliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Gen", "Gen"},
		{"genesis", "Gen"},
		{"1st samuel", "1Sam"},
		{"II Samuel", "2Sam"},
		{"Matt.", "Matt"},
		{"Revelations", "Rev"},
	}

	for _, tt := range tests {
		b, err := Resolve(tt.input)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.input, err)
		}
		if b.OSIS != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.input, b.OSIS, tt.want)
		}
	}
}

func TestResolve_RepeatedLookupUsesCache(t *testing.T) {
	first, err := Resolve("1 Cor")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := Resolve("1 Cor")
	if err != nil {
		t.Fatalf("Resolve (cached): %v", err)
	}
	if first != second {
		t.Errorf("cached Resolve returned a different book: %+v vs %+v", first, second)
	}
	if first.OSIS != "1Cor" {
		t.Errorf("Resolve(\"1 Cor\") = %q, want 1Cor", first.OSIS)
	}
	if cached, ok := resolveCache.Get("1 Cor"); !ok || cached != first {
		t.Errorf("resolveCache.Get(\"1 Cor\") = (%+v, %v), want (%+v, true)", cached, ok, first)
	}
}

func TestResolve_Unknown(t *testing.T) {
	if _, err := Resolve("NotABook"); err == nil {
		t.Error("expected error for unknown book name")
	}
}

func TestByOSIS_AllSixtySix(t *testing.T) {
	if len(Books) != 66 {
		t.Fatalf("len(Books) = %d, want 66", len(Books))
	}
	for _, want := range Books {
		got, err := ByOSIS(want.OSIS)
		if err != nil {
			t.Fatalf("ByOSIS(%q): %v", want.OSIS, err)
		}
		if got != want {
			t.Errorf("ByOSIS(%q) = %+v, want %+v", want.OSIS, got, want)
		}
	}
}
