// Package contenthash computes a content-addressed identity for a parsed
// translation, so a cached or on-disk render can be verified against the
// OSIS source it was derived from.
package contenthash

import (
	"bytes"
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/sixforms/osisbible/internal/osis"
)

// Hash is a hex-encoded BLAKE3 digest.
type Hash string

// OfTranslation hashes the six rendered buffers of a parsed translation, in
// a fixed form order with separators between them, so identical OSIS input
// always yields the same hash regardless of map iteration order elsewhere
// in the pipeline, and buffer boundaries can't alias each other.
func OfTranslation(t *osis.Translation) Hash {
	var buf bytes.Buffer
	for f := osis.Form(0); int(f) < osis.NumForms; f++ {
		buf.WriteString(t.Buffers[f])
		buf.WriteByte(0)
	}
	sum := blake3.Sum256(buf.Bytes())
	return Hash(hex.EncodeToString(sum[:]))
}

// OfSource hashes raw OSIS source bytes, for comparing an input file against
// a previously-hashed one without re-parsing it.
func OfSource(data []byte) Hash {
	sum := blake3.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}
