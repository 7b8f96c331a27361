package builder

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// CallIRI mints the IRI for the call edge at 0-indexed position under the
// caller's IRI-local fragment.
func CallIRI(baseIRI, callerFragment string, index int) quad.IRI {
	return entityIRI(baseIRI, "call", callerFragment, itoa(index))
}

// BuildCall emits the triples for one call-graph edge. The caller function
// is identified by the MetadataCaller fragment in the context; without one
// the edge is minted under unknown/0 and no belongsTo edge is emitted.
// Dynamic calls are typed LocalCall, a documented approximation.
func BuildCall(call extract.FunctionCall, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, hasCaller := ctx.callerFragment()
	iri := CallIRI(ctx.BaseIRI(), fragment, index)

	var triples []rdf.Triple

	switch call.Kind {
	case extract.CallRemote:
		triples = append(triples, rdf.Type(iri, quad.IRI(structure.ClassRemoteCall)))

		moduleName := call.TargetAtom
		if len(call.TargetModule) > 0 {
			moduleName = JoinModule(call.TargetModule)
		}
		triples = append(triples,
			rdf.DatatypeProperty(iri, quad.IRI(structure.PropModuleName), moduleName),
		)

		target := FunctionIRI(ctx.BaseIRI(), call.TargetModule, call.Name, call.Arity)
		if len(call.TargetModule) == 0 {
			target = entityIRI(ctx.BaseIRI(), call.TargetAtom, EscapeLocalName(call.Name), itoa(call.Arity))
		}
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropCallsFunction), target))

	default:
		// Local and dynamic calls both type LocalCall.
		triples = append(triples, rdf.Type(iri, quad.IRI(structure.ClassLocalCall)))
	}

	triples = append(triples,
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropFunctionName), call.Name),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropArity), call.Arity),
	)

	if hasCaller {
		callerIRI := quad.IRI(ctx.BaseIRI() + fragment)
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), callerIRI))
	}

	triples = append(triples, locationTriples(iri, call.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildCalls builds every call edge in input order with sequential 0-based
// indices.
func BuildCalls(calls []extract.FunctionCall, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(calls))
	var all []rdf.Triple
	for i, call := range calls {
		iri, triples, err := BuildCall(call, i, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}
