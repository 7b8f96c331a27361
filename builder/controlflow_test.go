package builder

import (
	"testing"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

func callerCtx(t *testing.T) *Context {
	t.Helper()
	return testContext(t).WithMetadata(map[string]any{MetadataCaller: "MyApp/run/0"})
}

func TestBuildConditionalPresenceGating(t *testing.T) {
	ctx := callerCtx(t)

	full := extract.Conditional{Kind: extract.CondIf, HasCondition: true, HasThenBranch: true, HasElseBranch: true}
	iri, triples, err := BuildConditional(full, 0, ctx)
	if err != nil {
		t.Fatalf("BuildConditional: %v", err)
	}
	if want := quad.IRI(testBase + "if/MyApp/run/0/0"); iri != want {
		t.Errorf("iri = %q, want %q", iri, want)
	}
	for _, p := range []string{structure.PropHasCondition, structure.PropHasThenBranch, structure.PropHasElseBranch} {
		if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(p), true)) {
			t.Errorf("missing marker %s=true", p)
		}
	}

	// Absent features emit nothing, never false.
	bare := extract.Conditional{Kind: extract.CondUnless, HasCondition: true}
	iri, triples, err = BuildConditional(bare, 1, ctx)
	if err != nil {
		t.Fatalf("BuildConditional: %v", err)
	}
	if want := quad.IRI(testBase + "unless/MyApp/run/0/1"); iri != want {
		t.Errorf("iri = %q, want %q", iri, want)
	}
	for _, p := range []string{structure.PropHasThenBranch, structure.PropHasElseBranch} {
		if hasPredicate(triples, quad.IRI(p)) {
			t.Errorf("marker %s emitted for an absent feature", p)
		}
	}
}

func TestBuildCaseMarkers(t *testing.T) {
	ctx := callerCtx(t)
	c := extract.CaseExpression{Clauses: []extract.CaseClause{{HasGuard: false}, {HasGuard: true}}}

	iri, triples, err := BuildCase(c, 0, ctx)
	if err != nil {
		t.Fatalf("BuildCase: %v", err)
	}

	if !hasTriple(triples, rdf.Type(iri, quad.IRI(structure.ClassCaseExpression))) {
		t.Error("missing CaseExpression type triple")
	}
	if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropHasClause), true)) {
		t.Error("missing hasClause marker")
	}
	if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropHasGuard), true)) {
		t.Error("missing hasGuard marker")
	}
}

func TestBuildWithElseClause(t *testing.T) {
	ctx := callerCtx(t)

	with := extract.WithExpression{Clauses: []extract.WithClause{{}}, HasElseClause: true}
	iri, triples, err := BuildWith(with, 0, ctx)
	if err != nil {
		t.Fatalf("BuildWith: %v", err)
	}
	if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropHasElseClause), true)) {
		t.Error("missing hasElseClause marker")
	}

	noElse := extract.WithExpression{Clauses: []extract.WithClause{{}}}
	_, triples, err = BuildWith(noElse, 1, ctx)
	if err != nil {
		t.Fatalf("BuildWith: %v", err)
	}
	if hasPredicate(triples, quad.IRI(structure.PropHasElseClause)) {
		t.Error("hasElseClause marker emitted without an else clause")
	}
}

func TestBuildReceiveAfterTimeout(t *testing.T) {
	ctx := callerCtx(t)
	r := extract.ReceiveExpression{Clauses: []extract.CaseClause{{}}, HasAfterTimeout: true}

	iri, triples, err := BuildReceive(r, 0, ctx)
	if err != nil {
		t.Fatalf("BuildReceive: %v", err)
	}
	if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropHasAfterTimeout), true)) {
		t.Error("missing hasAfterTimeout marker")
	}
}

func TestBuildComprehensionFlags(t *testing.T) {
	ctx := callerCtx(t)

	tests := []struct {
		name             string
		c                extract.Comprehension
		wantAccumulating bool
	}{
		{
			"reduce comprehension",
			extract.Comprehension{GeneratorCount: 1, HasReduceOption: true},
			true,
		},
		{
			"plain comprehension",
			extract.Comprehension{GeneratorCount: 2, FilterCount: 1, HasUniqOption: true},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iri, triples, err := BuildComprehension(tt.c, 0, ctx)
			if err != nil {
				t.Fatalf("BuildComprehension: %v", err)
			}

			// isAccumulating is an explicit flag: emitted on every
			// comprehension, true or false.
			if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropIsAccumulating), tt.wantAccumulating)) {
				t.Errorf("missing isAccumulating=%v triple", tt.wantAccumulating)
			}

			if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropHasGenerator), true)) {
				t.Error("missing hasGenerator marker")
			}
			if got := hasPredicate(triples, quad.IRI(structure.PropHasFilter)); got != (tt.c.FilterCount > 0) {
				t.Errorf("hasFilter present = %v, want %v", got, tt.c.FilterCount > 0)
			}
		})
	}
}

func TestControlFlowWithoutCallerUsesUnknown(t *testing.T) {
	ctx := testContext(t)
	iri, triples, err := BuildCase(extract.CaseExpression{}, 0, ctx)
	if err != nil {
		t.Fatalf("BuildCase: %v", err)
	}
	if want := quad.IRI(testBase + "case/unknown/0/0"); iri != want {
		t.Errorf("iri = %q, want %q", iri, want)
	}
	if hasPredicate(triples, quad.IRI(structure.PropBelongsTo)) {
		t.Error("belongsTo emitted without a caller fragment")
	}
}
