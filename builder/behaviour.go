package builder

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/core"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// CallbackIRI mints the IRI for a callback under its behaviour module.
func CallbackIRI(behaviourIRI quad.IRI, name string, arity int) quad.IRI {
	return quad.IRI(string(behaviourIRI) + "/" + EscapeLocalName(name) + "/" + itoa(arity))
}

// callbackClass selects the RDF class for a callback's flags.
func callbackClass(cb extract.Callback) quad.IRI {
	switch {
	case cb.IsMacroCallback:
		return quad.IRI(structure.ClassMacroCallback)
	case cb.IsOptional:
		return quad.IRI(structure.ClassOptionalCallback)
	default:
		return quad.IRI(structure.ClassCallback)
	}
}

// knownBehaviourCallbacks is the fixed table of callback signatures for
// well-known OTP behaviours. Implementation linking only matches against
// this table; user-defined behaviours get an implementsBehaviour edge and
// nothing more.
var knownBehaviourCallbacks = map[string][]extract.FunctionRef{
	"GenServer": {
		{Name: "init", Arity: 1},
		{Name: "handle_call", Arity: 3},
		{Name: "handle_cast", Arity: 2},
		{Name: "handle_info", Arity: 2},
		{Name: "handle_continue", Arity: 2},
		{Name: "terminate", Arity: 2},
		{Name: "code_change", Arity: 3},
	},
	"Supervisor": {
		{Name: "init", Arity: 1},
	},
	"Application": {
		{Name: "start", Arity: 2},
		{Name: "stop", Arity: 1},
	},
	"GenEvent": {
		{Name: "init", Arity: 1},
		{Name: "handle_event", Arity: 2},
		{Name: "handle_call", Arity: 2},
	},
	"Task": {
		{Name: "run", Arity: 1},
	},
}

// BuildBehaviour emits the triples for a behaviour declaration. The
// behaviour entity is the declaring module itself; each callback becomes a
// name/arity sub-entity. Duplicate callback specs collapse to a single
// triple set.
func BuildBehaviour(b extract.Behaviour, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	modPath, ok := ctx.modulePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: behaviour", ErrNoModuleContext)
	}

	iri := quad.IRI(ctx.BaseIRI() + modPath)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassBehaviour)),
	}

	for _, cb := range b.Callbacks {
		cbIRI := CallbackIRI(iri, cb.Name, cb.Arity)
		triples = append(triples,
			rdf.Type(cbIRI, callbackClass(cb)),
			rdf.DatatypeProperty(cbIRI, quad.IRI(structure.PropFunctionName), cb.Name),
			rdf.DatatypeProperty(cbIRI, quad.IRI(structure.PropArity), cb.Arity),
			rdf.ObjectProperty(iri, quad.IRI(structure.PropDefinesCallback), cbIRI),
		)
		if cb.Doc != nil {
			triples = append(triples, rdf.DatatypeProperty(cbIRI, quad.IRI(core.PropDocumentation), *cb.Doc))
		}
	}

	triples = append(triples, locationTriples(iri, b.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildImplementation links an implementing module to a behaviour. For
// behaviours in the known-callback table, functions whose name/arity match
// a callback signature additionally get implementsCallback edges; unknown
// behaviours never get speculative callback matches.
func BuildImplementation(impl extract.Implementation, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	modPath, ok := ctx.modulePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: implementation", ErrNoModuleContext)
	}

	moduleIRI := quad.IRI(ctx.BaseIRI() + modPath)
	behaviourIRI := ModuleIRI(ctx.BaseIRI(), impl.Behaviour)

	triples := []rdf.Triple{
		rdf.ObjectProperty(moduleIRI, quad.IRI(structure.PropImplementsBehaviour), behaviourIRI),
	}

	callbacks, known := knownBehaviourCallbacks[JoinModule(impl.Behaviour)]
	if known {
		for _, fn := range impl.Functions {
			for _, cb := range callbacks {
				if fn.Name == cb.Name && fn.Arity == cb.Arity {
					fnIRI := entityIRI(ctx.BaseIRI(), modPath, EscapeLocalName(fn.Name), itoa(fn.Arity))
					cbIRI := CallbackIRI(behaviourIRI, cb.Name, cb.Arity)
					triples = append(triples, rdf.ObjectProperty(fnIRI, quad.IRI(structure.PropImplementsCallback), cbIRI))
				}
			}
		}
	}

	return moduleIRI, rdf.Deduplicate(triples), nil
}
