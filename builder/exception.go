package builder

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// BuildTry emits the triples for a try block at the given 0-indexed
// position. Handler-section markers follow the presence-gated pattern.
func BuildTry(t extract.TryExpression, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, _ := ctx.callerFragment()
	iri := ControlFlowIRI(ctx.BaseIRI(), "try", fragment, index)

	triples := controlFlowBase(iri, quad.IRI(structure.ClassTryExpression), ctx)
	triples = marker(triples, iri, structure.PropHasRescueClause, t.HasRescueClause)
	triples = marker(triples, iri, structure.PropHasCatchClause, t.HasCatchClause)
	triples = marker(triples, iri, structure.PropHasAfterClause, t.HasAfterClause)
	triples = marker(triples, iri, structure.PropHasElseClause, t.HasElseClause)
	triples = append(triples, locationTriples(iri, t.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildRaise emits the triples for a raise call. The exception-module edge
// is emitted only when the raised module is statically known.
func BuildRaise(r extract.RaiseExpression, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, _ := ctx.callerFragment()
	iri := ControlFlowIRI(ctx.BaseIRI(), "raise", fragment, index)

	triples := controlFlowBase(iri, quad.IRI(structure.ClassRaiseExpression), ctx)
	if len(r.ExceptionModule) > 0 {
		target := ModuleIRI(ctx.BaseIRI(), r.ExceptionModule)
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropRaisesException), target))
	}
	triples = marker(triples, iri, structure.PropHasMessage, r.HasMessage)
	triples = append(triples, locationTriples(iri, r.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildThrow emits the triples for a throw call.
func BuildThrow(t extract.ThrowExpression, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, _ := ctx.callerFragment()
	iri := ControlFlowIRI(ctx.BaseIRI(), "throw", fragment, index)

	triples := controlFlowBase(iri, quad.IRI(structure.ClassThrowExpression), ctx)
	triples = append(triples, locationTriples(iri, t.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}
