package builder

import (
	"testing"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

func TestBuildMacroInvocationResolved(t *testing.T) {
	ctx := testContext(t).WithModule("MyApp")
	idx := 3
	m := extract.MacroInvocation{
		Name:            "from",
		Arity:           2,
		Category:        extract.MacroLibrary,
		Resolution:      extract.ResolutionResolved,
		Module:          []string{"Ecto", "Query"},
		InvocationIndex: &idx,
	}

	iri, triples, err := BuildMacroInvocation(m, ctx)
	if err != nil {
		t.Fatalf("BuildMacroInvocation: %v", err)
	}

	if want := quad.IRI(testBase + "MyApp/invocation/3-Ecto.Query.from"); iri != want {
		t.Errorf("iri = %q, want %q", iri, want)
	}
	for _, tr := range []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassMacroInvocation)),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropMacroName), "from"),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropMacroArity), 2),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropMacroCategory), "library"),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropResolutionStatus), "resolved"),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropMacroModule), "Ecto.Query"),
	} {
		if !hasTriple(triples, tr) {
			t.Errorf("missing triple %+v", tr)
		}
	}
}

func TestBuildMacroInvocationUnresolvedOmitsModule(t *testing.T) {
	ctx := testContext(t).WithModule("MyApp")
	m := extract.MacroInvocation{
		Name:       "custom_macro",
		Arity:      1,
		Category:   extract.MacroCustom,
		Resolution: extract.ResolutionUnresolved,
	}

	_, triples, err := BuildMacroInvocation(m, ctx)
	if err != nil {
		t.Fatalf("BuildMacroInvocation: %v", err)
	}

	// Never an empty-string placeholder.
	if hasPredicate(triples, quad.IRI(structure.PropMacroModule)) {
		t.Error("macroModule emitted for an unresolved macro")
	}
	if !hasTriple(triples, rdf.DatatypeProperty(quad.IRI(testBase+"MyApp/invocation/0-custom_macro"), quad.IRI(structure.PropResolutionStatus), "unresolved")) {
		t.Error("missing resolutionStatus=unresolved triple")
	}
}

func TestBuildMacroInvocationLineFallbackIndex(t *testing.T) {
	ctx := testContext(t).WithModule("MyApp")
	m := extract.MacroInvocation{
		Name:       "if",
		Arity:      2,
		Category:   extract.MacroControlFlow,
		Resolution: extract.ResolutionKernel,
		Location:   &extract.Location{StartLine: 42, EndLine: 44},
	}

	iri, _, err := BuildMacroInvocation(m, ctx)
	if err != nil {
		t.Fatalf("BuildMacroInvocation: %v", err)
	}

	if want := quad.IRI(testBase + "MyApp/invocation/42-if"); iri != want {
		t.Errorf("iri = %q, want %q (line-number fallback)", iri, want)
	}
}
