package rdf

import (
	"io"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
)

// WriteNQuads serializes triples to w in N-Quads form, one statement per
// line.
func WriteNQuads(w io.Writer, triples []Triple) error {
	nw := nquads.NewWriter(w)
	defer nw.Close()

	for _, t := range triples {
		q := quad.Quad{
			Subject:   t.Subject,
			Predicate: t.Predicate,
			Object:    t.Object,
		}
		if err := nw.WriteQuad(q); err != nil {
			return err
		}
	}
	return nil
}
