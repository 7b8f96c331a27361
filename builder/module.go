package builder

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// BuildModule emits the triples for the enclosing module entity itself.
// Nested modules additionally get a belongsTo edge to their parent.
func BuildModule(ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	iri, ok := ctx.ModuleIRI()
	if !ok {
		return "", nil, ErrNoModuleContext
	}

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassModule)),
	}
	if len(ctx.Module()) > 0 {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropModuleName), JoinModule(ctx.Module())))
	}

	if parent := ctx.ParentModule(); parent != "" && parent != iri {
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), parent))
	}

	return iri, rdf.Deduplicate(triples), nil
}
