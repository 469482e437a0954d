package osis

// Form identifies one of the six rendered output buffers the book parser
// maintains in lockstep: {HTML, plain text} x {scholar, readers, notes}.
type Form int

const (
	FormHTML Form = iota
	FormHTMLReaders
	FormHTMLNotes
	FormPlain
	FormPlainReaders
	FormPlainNotes

	numForms
)

// NumForms is the number of parallel rendered forms (6): exported so
// callers outside the package can iterate Form(0)..NumForms without
// reaching into the unexported numForms sentinel.
const NumForms = int(numForms)

func (f Form) String() string {
	switch f {
	case FormHTML:
		return "html"
	case FormHTMLReaders:
		return "html_readers"
	case FormHTMLNotes:
		return "html_notes"
	case FormPlain:
		return "plain"
	case FormPlainReaders:
		return "plain_readers"
	case FormPlainNotes:
		return "plain_notes"
	default:
		return "unknown"
	}
}

// IsHTML reports whether the form renders HTML markup rather than plain text.
func (f Form) IsHTML() bool {
	return f == FormHTML || f == FormHTMLReaders || f == FormHTMLNotes
}

// IsNotes reports whether the form is one of the two "notes" forms, which
// receive everything (including note/rdg content) regardless of context.
func (f Form) IsNotes() bool {
	return f == FormHTMLNotes || f == FormPlainNotes
}

// IsReaders reports whether the form is one of the two "readers" forms,
// which never receive transChange brackets.
func (f Form) IsReaders() bool {
	return f == FormHTMLReaders || f == FormPlainReaders
}
