package rdf

import "github.com/cayleygraph/quad"

// BuildList encodes an ordered sequence of terms as an RDF list: a chain of
// blank-node cons cells carrying one rdf:first and one rdf:rest triple each.
// An empty sequence returns rdf:nil as the head with no triples.
func BuildList(items []quad.Value) (quad.Value, []Triple) {
	if len(items) == 0 {
		return Nil, nil
	}

	cells := make([]quad.BNode, len(items))
	for i := range items {
		cells[i] = NewBlankNode("list")
	}

	triples := make([]Triple, 0, 2*len(items))
	for i, item := range items {
		triples = append(triples, Triple{Subject: cells[i], Predicate: First, Object: item})

		var rest quad.Value = Nil
		if i < len(items)-1 {
			rest = cells[i+1]
		}
		triples = append(triples, Triple{Subject: cells[i], Predicate: Rest, Object: rest})
	}

	return cells[0], triples
}
