package builder

import (
	"testing"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

func TestClauseIndexingLaw(t *testing.T) {
	// The IRI path segment is the 0-indexed position; the clauseOrder
	// literal is position+1.
	ctx := testContext(t).WithModule("MyApp")
	fnIRI := quad.IRI(testBase + "MyApp/greet/1")

	clauses := []extract.Clause{
		{Parameters: []extract.Parameter{{Name: "name", Shape: extract.ShapeVariable}}},
		{Parameters: []extract.Parameter{{Shape: extract.ShapePattern}}},
	}

	iris, triples, err := BuildClauses(clauses, fnIRI, ctx)
	if err != nil {
		t.Fatalf("BuildClauses: %v", err)
	}

	for p := range clauses {
		wantIRI := quad.IRI(string(fnIRI) + "/clause/" + itoa(p))
		if iris[p] != wantIRI {
			t.Errorf("clause %d iri = %q, want %q", p, iris[p], wantIRI)
		}
		wantOrder := rdf.DatatypeProperty(wantIRI, quad.IRI(structure.PropClauseOrder), p+1)
		if !hasTriple(triples, wantOrder) {
			t.Errorf("clause %d: missing clauseOrder=%d triple", p, p+1)
		}
		if !hasTriple(triples, rdf.ObjectProperty(fnIRI, quad.IRI(structure.PropHasClause), wantIRI)) {
			t.Errorf("clause %d: missing hasClause edge from function", p)
		}
	}
}

func TestParameterIndexingAndClasses(t *testing.T) {
	ctx := testContext(t).WithModule("MyApp")
	fnIRI := quad.IRI(testBase + "MyApp/greet/3")

	clause := extract.Clause{Parameters: []extract.Parameter{
		{Name: "name", Shape: extract.ShapeVariable},
		{Name: "opts", Shape: extract.ShapeDefault},
		{Shape: extract.ShapePattern},
	}}

	clauseIRI, triples, err := BuildClause(clause, fnIRI, 0, ctx)
	if err != nil {
		t.Fatalf("BuildClause: %v", err)
	}

	wantClasses := []quad.IRI{
		quad.IRI(structure.ClassParameter),
		quad.IRI(structure.ClassDefaultParameter),
		quad.IRI(structure.ClassPatternParameter),
	}
	for pos, class := range wantClasses {
		pIRI := ParameterIRI(clauseIRI, pos)
		if !hasTriple(triples, rdf.Type(pIRI, class)) {
			t.Errorf("param %d: missing type %v", pos, class)
		}
		if !hasTriple(triples, rdf.DatatypeProperty(pIRI, quad.IRI(structure.PropParameterPosition), pos+1)) {
			t.Errorf("param %d: missing parameterPosition=%d", pos, pos+1)
		}
	}

	// The unnamed pattern parameter carries no name literal.
	if hasTriple(triples, rdf.DatatypeProperty(ParameterIRI(clauseIRI, 2), quad.IRI(structure.PropParameterName), "")) {
		t.Error("unnamed parameter emitted an empty name literal")
	}
}

func TestClauseGuardGating(t *testing.T) {
	ctx := testContext(t).WithModule("MyApp")
	fnIRI := quad.IRI(testBase + "MyApp/check/1")

	guarded := extract.Clause{Guard: &extract.Expr{Kind: extract.ExprOperator, Op: ">"}}
	_, triples, err := BuildClause(guarded, fnIRI, 0, ctx)
	if err != nil {
		t.Fatalf("BuildClause: %v", err)
	}
	if !hasPredicate(triples, quad.IRI(structure.PropHasGuard)) {
		t.Error("guarded clause: missing hasGuard edge")
	}

	plain := extract.Clause{}
	_, triples, err = BuildClause(plain, fnIRI, 0, ctx)
	if err != nil {
		t.Fatalf("BuildClause: %v", err)
	}
	if hasPredicate(triples, quad.IRI(structure.PropHasGuard)) {
		t.Error("unguarded clause: unexpected hasGuard edge")
	}
}

func TestClauseParameterListShape(t *testing.T) {
	ctx := testContext(t).WithModule("MyApp")
	fnIRI := quad.IRI(testBase + "MyApp/pair/2")

	clause := extract.Clause{Parameters: []extract.Parameter{
		{Name: "a", Shape: extract.ShapeVariable},
		{Name: "b", Shape: extract.ShapeVariable},
	}}

	_, triples, err := BuildClause(clause, fnIRI, 0, ctx)
	if err != nil {
		t.Fatalf("BuildClause: %v", err)
	}

	var firsts, rests int
	for _, tr := range triples {
		switch tr.Predicate {
		case rdf.First:
			firsts++
		case rdf.Rest:
			rests++
		}
	}
	if firsts != 2 || rests != 2 {
		t.Errorf("list triples first=%d rest=%d, want 2 and 2", firsts, rests)
	}

	// Zero parameters: the head links straight to rdf:nil.
	_, triples, err = BuildClause(extract.Clause{}, fnIRI, 0, ctx)
	if err != nil {
		t.Fatalf("BuildClause: %v", err)
	}
	found := false
	for _, tr := range triples {
		if tr.Predicate == quad.IRI(structure.PropHasParameters) && tr.Object == quad.Value(rdf.Nil) {
			found = true
		}
	}
	if !found {
		t.Error("empty clause: hasParameters does not point at rdf:nil")
	}
}
