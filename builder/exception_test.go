package builder

import (
	"testing"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

func TestBuildTryMarkers(t *testing.T) {
	ctx := callerCtx(t)

	tests := []struct {
		name    string
		expr    extract.TryExpression
		present []string
		absent  []string
	}{
		{
			"rescue and after",
			extract.TryExpression{HasRescueClause: true, HasAfterClause: true},
			[]string{structure.PropHasRescueClause, structure.PropHasAfterClause},
			[]string{structure.PropHasCatchClause, structure.PropHasElseClause},
		},
		{
			"catch and else",
			extract.TryExpression{HasCatchClause: true, HasElseClause: true},
			[]string{structure.PropHasCatchClause, structure.PropHasElseClause},
			[]string{structure.PropHasRescueClause, structure.PropHasAfterClause},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iri, triples, err := BuildTry(tt.expr, 0, ctx)
			if err != nil {
				t.Fatalf("BuildTry: %v", err)
			}
			if want := quad.IRI(testBase + "try/MyApp/run/0/0"); iri != want {
				t.Errorf("iri = %q, want %q", iri, want)
			}
			for _, p := range tt.present {
				if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(p), true)) {
					t.Errorf("missing marker %s", p)
				}
			}
			for _, p := range tt.absent {
				if hasPredicate(triples, quad.IRI(p)) {
					t.Errorf("marker %s emitted for an absent section", p)
				}
			}
		})
	}
}

func TestBuildRaiseExceptionModuleGating(t *testing.T) {
	ctx := callerCtx(t)

	static := extract.RaiseExpression{ExceptionModule: []string{"ArgumentError"}, HasMessage: true}
	iri, triples, err := BuildRaise(static, 0, ctx)
	if err != nil {
		t.Fatalf("BuildRaise: %v", err)
	}
	if !hasTriple(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropRaisesException), quad.IRI(testBase+"ArgumentError"))) {
		t.Error("missing raisesException edge for a static exception module")
	}
	if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropHasMessage), true)) {
		t.Error("missing hasMessage marker")
	}

	dynamic := extract.RaiseExpression{}
	_, triples, err = BuildRaise(dynamic, 1, ctx)
	if err != nil {
		t.Fatalf("BuildRaise: %v", err)
	}
	if hasPredicate(triples, quad.IRI(structure.PropRaisesException)) {
		t.Error("raisesException edge emitted for a dynamic raise")
	}
}

func TestBuildThrow(t *testing.T) {
	ctx := callerCtx(t)

	iri, triples, err := BuildThrow(extract.ThrowExpression{}, 2, ctx)
	if err != nil {
		t.Fatalf("BuildThrow: %v", err)
	}
	if want := quad.IRI(testBase + "throw/MyApp/run/0/2"); iri != want {
		t.Errorf("iri = %q, want %q", iri, want)
	}
	if !hasTriple(triples, rdf.Type(iri, quad.IRI(structure.ClassThrowExpression))) {
		t.Error("missing ThrowExpression type triple")
	}
}
