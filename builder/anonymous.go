package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// AnonymousFunctionIRI mints the IRI for the anonymous function at
// 0-indexed position under its naming prefix.
func AnonymousFunctionIRI(baseIRI, namePath string, index int) quad.IRI {
	return entityIRI(baseIRI, namePath, "anon", itoa(index))
}

// CaptureVariableIRI mints the IRI for a variable captured by a closure.
func CaptureVariableIRI(anonIRI quad.IRI, variable string) quad.IRI {
	return quad.IRI(string(anonIRI) + "/capture/" + EscapeLocalName(variable))
}

// BuildAnonymousFunction emits the triples for one fn expression at the
// given 0-indexed position, including its clauses.
func BuildAnonymousFunction(anon extract.AnonymousFunction, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	namePath, ok := ctx.namePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: anonymous function", ErrNoModuleContext)
	}

	iri := AnonymousFunctionIRI(ctx.BaseIRI(), namePath, index)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassAnonymousFunction)),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropArity), anon.Arity),
	}

	_, clauseTriples, err := BuildClauses(anon.Clauses, iri, ctx)
	if err != nil {
		return "", nil, err
	}
	triples = append(triples, clauseTriples...)

	triples = append(triples, locationTriples(iri, anon.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// FreeVariables returns the body variables not bound by any clause's
// parameter list, ignoring underscore-prefixed names. The result is sorted
// and duplicate-free.
func FreeVariables(anon extract.AnonymousFunction) []string {
	bound := make(map[string]struct{})
	for _, clause := range anon.Clauses {
		for _, p := range clause.Parameters {
			if p.Name != "" {
				bound[p.Name] = struct{}{}
			}
		}
	}

	seen := make(map[string]struct{})
	var free []string
	for _, v := range anon.BodyVariables {
		if v == "" || strings.HasPrefix(v, "_") {
			continue
		}
		if _, ok := bound[v]; ok {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		free = append(free, v)
	}
	sort.Strings(free)
	return free
}

// BuildClosure runs the closure pass over an already-built anonymous
// function: when the body references free variables the function is
// additionally typed Closure and each captured variable becomes a
// sub-entity with exactly three triples. Zero free variables produce zero
// triples.
func BuildClosure(anon extract.AnonymousFunction, anonIRI quad.IRI, ctx *Context) ([]rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	free := FreeVariables(anon)
	if len(free) == 0 {
		return nil, nil
	}

	triples := []rdf.Triple{
		rdf.Type(anonIRI, quad.IRI(structure.ClassClosure)),
	}
	for _, v := range free {
		capIRI := CaptureVariableIRI(anonIRI, v)
		triples = append(triples,
			rdf.ObjectProperty(anonIRI, quad.IRI(structure.PropCapturesVariable), capIRI),
			rdf.Type(capIRI, quad.IRI(structure.ClassCapturedVariable)),
			rdf.DatatypeProperty(capIRI, quad.IRI(structure.PropVariableName), v),
		)
	}
	return rdf.Deduplicate(triples), nil
}

// BuildAnonymousFunctions builds every anonymous function in input order
// with sequential 0-based indices, running the closure pass on each.
func BuildAnonymousFunctions(anons []extract.AnonymousFunction, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(anons))
	var all []rdf.Triple
	for i, anon := range anons {
		iri, triples, err := BuildAnonymousFunction(anon, i, ctx)
		if err != nil {
			return nil, nil, err
		}
		closureTriples, err := BuildClosure(anon, iri, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
		all = append(all, closureTriples...)
	}
	return iris, rdf.Deduplicate(all), nil
}
