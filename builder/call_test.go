package builder

import (
	"testing"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

func TestBuildCallRemote(t *testing.T) {
	ctx := testContext(t).WithMetadata(map[string]any{MetadataCaller: "MyApp/run/0"})
	call := extract.FunctionCall{
		Kind:         extract.CallRemote,
		Name:         "map",
		Arity:        2,
		TargetModule: []string{"Enum"},
	}

	iri, triples, err := BuildCall(call, 0, ctx)
	if err != nil {
		t.Fatalf("BuildCall: %v", err)
	}

	if want := quad.IRI(testBase + "call/MyApp/run/0/0"); iri != want {
		t.Errorf("iri = %q, want %q", iri, want)
	}
	if !hasTriple(triples, rdf.Type(iri, quad.IRI(structure.ClassRemoteCall))) {
		t.Error("missing RemoteCall type triple")
	}
	if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropModuleName), "Enum")) {
		t.Error("missing moduleName literal")
	}
	if !hasTriple(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropCallsFunction), quad.IRI(testBase+"Enum/map/2"))) {
		t.Error("missing callsFunction edge")
	}
	if !hasTriple(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), quad.IRI(testBase+"MyApp/run/0"))) {
		t.Error("missing belongsTo edge to caller")
	}
}

func TestBuildCallErlangAtomTarget(t *testing.T) {
	ctx := testContext(t)
	call := extract.FunctionCall{
		Kind:       extract.CallRemote,
		Name:       "monotonic_time",
		Arity:      0,
		TargetAtom: ":erlang",
	}

	_, triples, err := BuildCall(call, 0, ctx)
	if err != nil {
		t.Fatalf("BuildCall: %v", err)
	}

	found := false
	for _, tr := range triples {
		if tr.Predicate == quad.IRI(structure.PropModuleName) && tr.Object == quad.Value(quad.String(":erlang")) {
			found = true
		}
	}
	if !found {
		t.Error("moduleName should carry the raw atom text for built-in targets")
	}
}

func TestBuildCallLocalAndDynamic(t *testing.T) {
	ctx := testContext(t)

	for _, kind := range []extract.CallKind{extract.CallLocal, extract.CallDynamic} {
		iri, triples, err := BuildCall(extract.FunctionCall{Kind: kind, Name: "helper", Arity: 1}, 0, ctx)
		if err != nil {
			t.Fatalf("BuildCall(%s): %v", kind, err)
		}
		if !hasTriple(triples, rdf.Type(iri, quad.IRI(structure.ClassLocalCall))) {
			t.Errorf("%s call: missing LocalCall type triple", kind)
		}
		if hasPredicate(triples, quad.IRI(structure.PropCallsFunction)) {
			t.Errorf("%s call: unexpected callsFunction edge", kind)
		}
	}
}

func TestBuildCallWithoutCallerContext(t *testing.T) {
	ctx := testContext(t)
	call := extract.FunctionCall{Kind: extract.CallLocal, Name: "helper", Arity: 0}

	iri, triples, err := BuildCall(call, 3, ctx)
	if err != nil {
		t.Fatalf("BuildCall: %v", err)
	}

	if want := quad.IRI(testBase + "call/unknown/0/3"); iri != want {
		t.Errorf("iri = %q, want %q", iri, want)
	}
	if hasPredicate(triples, quad.IRI(structure.PropBelongsTo)) {
		t.Error("belongsTo emitted without a caller fragment")
	}
}

func TestBuildCallsDistinctIRIs(t *testing.T) {
	ctx := testContext(t).WithMetadata(map[string]any{MetadataCaller: "MyApp/run/0"})
	calls := []extract.FunctionCall{
		{Kind: extract.CallLocal, Name: "helper", Arity: 0},
		{Kind: extract.CallLocal, Name: "helper", Arity: 0},
	}

	iris, _, err := BuildCalls(calls, ctx)
	if err != nil {
		t.Fatalf("BuildCalls: %v", err)
	}
	if iris[0] == iris[1] {
		t.Errorf("identical records at different positions share IRI %q", iris[0])
	}
}
