package builder

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// FunctionCaptureIRI mints the IRI for the &-capture at 0-indexed position
// under the containing function's fragment.
func FunctionCaptureIRI(baseIRI, callerFragment string, index int) quad.IRI {
	return entityIRI(baseIRI, "capture", callerFragment, itoa(index))
}

// BuildFunctionCapture emits the triples for one &-capture expression:
// &Mod.fun/arity, &fun/arity, or a positional shorthand like &(&1 + 1).
// Module and function literals are presence-gated; positional shorthands
// carry only the arity.
func BuildFunctionCapture(cap extract.Capture, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, hasCaller := ctx.callerFragment()
	iri := FunctionCaptureIRI(ctx.BaseIRI(), fragment, index)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassFunctionCapture)),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropCaptureArity), cap.Arity),
	}

	if cap.Function != "" {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropCaptureFunctionName), cap.Function))
	}
	if len(cap.Module) > 0 {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropCaptureModuleName), JoinModule(cap.Module)))
	}

	if hasCaller {
		callerIRI := quad.IRI(ctx.BaseIRI() + fragment)
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), callerIRI))
	}

	triples = append(triples, locationTriples(iri, cap.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildFunctionCaptures builds every capture in input order with sequential
// 0-based indices.
func BuildFunctionCaptures(caps []extract.Capture, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(caps))
	var all []rdf.Triple
	for i, cap := range caps {
		iri, triples, err := BuildFunctionCapture(cap, i, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}
