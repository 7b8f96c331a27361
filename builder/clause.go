package builder

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// ClauseIRI mints the IRI for the clause at 0-indexed position order under
// its function.
func ClauseIRI(functionIRI quad.IRI, order int) quad.IRI {
	return quad.IRI(string(functionIRI) + "/clause/" + itoa(order))
}

// ParameterIRI mints the IRI for the parameter at 0-indexed position under
// its clause.
func ParameterIRI(clauseIRI quad.IRI, position int) quad.IRI {
	return quad.IRI(string(clauseIRI) + "/param/" + itoa(position))
}

// parameterClass selects the RDF class for a parameter's pattern shape.
func parameterClass(shape extract.ParameterShape) quad.IRI {
	switch shape {
	case extract.ShapeDefault:
		return quad.IRI(structure.ClassDefaultParameter)
	case extract.ShapePattern:
		return quad.IRI(structure.ClassPatternParameter)
	default:
		return quad.IRI(structure.ClassParameter)
	}
}

// BuildClause emits the triples for one clause of a function: the clause
// entity with its 1-indexed order, a blank-node head carrying the RDF list
// of parameters and the optional guard, and a blank-node body. The IRI path
// segment uses the 0-indexed order; the clauseOrder literal is order+1.
func BuildClause(clause extract.Clause, functionIRI quad.IRI, order int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	iri := ClauseIRI(functionIRI, order)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassFunctionClause)),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropClauseOrder), order+1),
		rdf.ObjectProperty(functionIRI, quad.IRI(structure.PropHasClause), iri),
	}

	// Head: parameter list plus optional guard.
	head := rdf.NewBlankNode("head")
	triples = append(triples,
		rdf.ObjectProperty(iri, quad.IRI(structure.PropHasFunctionHead), head),
		rdf.Type(head, quad.IRI(structure.ClassFunctionHead)),
	)

	paramIRIs := make([]quad.Value, 0, len(clause.Parameters))
	for pos, param := range clause.Parameters {
		pIRI := ParameterIRI(iri, pos)
		paramIRIs = append(paramIRIs, pIRI)

		triples = append(triples,
			rdf.Type(pIRI, parameterClass(param.Shape)),
			rdf.DatatypeProperty(pIRI, quad.IRI(structure.PropParameterPosition), pos+1),
		)
		if param.Name != "" {
			triples = append(triples, rdf.DatatypeProperty(pIRI, quad.IRI(structure.PropParameterName), param.Name))
		}
	}

	listHead, listTriples := rdf.BuildList(paramIRIs)
	triples = append(triples, rdf.ObjectProperty(head, quad.IRI(structure.PropHasParameters), listHead))
	triples = append(triples, listTriples...)

	if clause.Guard != nil {
		guard := rdf.NewBlankNode("guard")
		triples = append(triples,
			rdf.ObjectProperty(head, quad.IRI(structure.PropHasGuard), guard),
			rdf.Type(guard, quad.IRI(structure.ClassGuardClause)),
		)
	}

	body := rdf.NewBlankNode("body")
	triples = append(triples,
		rdf.ObjectProperty(iri, quad.IRI(structure.PropHasFunctionBody), body),
		rdf.Type(body, quad.IRI(structure.ClassFunctionBody)),
	)

	triples = append(triples, locationTriples(iri, clause.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildClauses builds every clause in input order with sequential 0-based
// indices, concatenating the triple streams in that order.
func BuildClauses(clauses []extract.Clause, functionIRI quad.IRI, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(clauses))
	var all []rdf.Triple
	for i, clause := range clauses {
		iri, triples, err := BuildClause(clause, functionIRI, i, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}
