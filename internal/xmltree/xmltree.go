// Package xmltree wraps antchfx/xmlquery to give the OSIS parser a node
// tree that preserves document order and the text/tail split that mixed XML
// content needs. encoding/xml's struct-unmarshalling collapses both, which
// is why the rest of this module never uses it directly for OSIS documents.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Document represents a parsed XML document.
type Document struct {
	Root *xmlquery.Node
}

// ValidationError describes a single well-formedness failure.
type ValidationError struct {
	Message string
}

// Parse parses XML data and returns a Document. xmlquery parses through
// encoding/xml internally, which does not fetch external entities by
// default; see Validate for the explicit XXE (CWE-611) defense-in-depth
// check run before Parse on untrusted input.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing OSIS XML: %w", err)
	}
	return &Document{Root: root}, nil
}

// Validate checks well-formedness only; it does not fetch external entities.
// ParseTranslation runs this ahead of Parse on every document so a crafted
// DOCTYPE with an external or expanding entity never reaches xmlquery.
func Validate(data []byte) []ValidationError {
	var errs []ValidationError

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}

	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, ValidationError{Message: err.Error()})
			break
		}
	}

	return errs
}

// XPath executes an XPath query and returns all matching nodes.
func (d *Document) XPath(expr string) ([]*xmlquery.Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	nodes, err := xmlquery.QueryAll(d.Root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query %q failed: %w", expr, err)
	}
	return nodes, nil
}

// XPathFirst executes an XPath query and returns the first matching node,
// or nil if nothing matched.
func (d *Document) XPathFirst(expr string) (*xmlquery.Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	node, err := xmlquery.Query(d.Root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query %q failed: %w", expr, err)
	}
	return node, nil
}

// Dump renders a node subtree back to indented XML, purely for debugging;
// it is never used on the hot parsing path.
func Dump(n *xmlquery.Node) string {
	var buf bytes.Buffer
	dumpNode(&buf, n, 0)
	return buf.String()
}

func dumpNode(w *bytes.Buffer, n *xmlquery.Node, depth int) {
	if n == nil {
		return
	}
	switch n.Type {
	case xmlquery.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dumpNode(w, c, depth)
		}
	case xmlquery.ElementNode:
		writeIndent(w, depth)
		w.WriteString("<")
		w.WriteString(n.Data)
		for _, a := range n.Attr {
			fmt.Fprintf(w, " %s=%q", a.Name.Local, escapeXMLAttr(a.Value))
		}
		w.WriteString(">\n")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dumpNode(w, c, depth+1)
		}
		writeIndent(w, depth)
		fmt.Fprintf(w, "</%s>\n", n.Data)
	case xmlquery.TextNode:
		t := strings.TrimSpace(n.Data)
		if t != "" {
			writeIndent(w, depth)
			w.WriteString(escapeXMLText(t))
			w.WriteString("\n")
		}
	}
}

func writeIndent(w *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString("  ")
	}
}
