package builder

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/core"
)

// locationTriples attaches a blank-node source location to subject.
// Both a location record and a file path are required; with either absent
// no triples are produced.
func locationTriples(subject quad.Value, loc *extract.Location, filePath string) []rdf.Triple {
	if loc == nil || filePath == "" {
		return nil
	}

	node := rdf.NewBlankNode("loc")
	triples := []rdf.Triple{
		rdf.ObjectProperty(subject, quad.IRI(core.PropHasSourceLocation), node),
		rdf.Type(node, quad.IRI(core.ClassSourceLocation)),
		rdf.DatatypeProperty(node, quad.IRI(core.PropFilePath), filePath),
		rdf.DatatypeProperty(node, quad.IRI(core.PropStartLine), loc.StartLine),
		rdf.DatatypeProperty(node, quad.IRI(core.PropEndLine), loc.EndLine),
	}
	if loc.StartColumn > 0 {
		triples = append(triples, rdf.DatatypeProperty(node, quad.IRI(core.PropStartColumn), loc.StartColumn))
	}
	if loc.EndColumn > 0 {
		triples = append(triples, rdf.DatatypeProperty(node, quad.IRI(core.PropEndColumn), loc.EndColumn))
	}
	return triples
}
