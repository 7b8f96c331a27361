package builder

import (
	"testing"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

func TestBuildAttributeKinds(t *testing.T) {
	ctx := testContext(t).WithModule("MyApp")

	tests := []struct {
		kind extract.AttributeKind
		want string
	}{
		{extract.AttrModuleDoc, structure.ClassModuleDoc},
		{extract.AttrDoc, structure.ClassDocAttribute},
		{extract.AttrDeprecated, structure.ClassDeprecatedAttr},
		{extract.AttrCustom, structure.ClassAttribute},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			attr := extract.Attribute{Kind: tt.kind, Name: string(tt.kind)}
			iri, triples, err := BuildAttribute(attr, 0, ctx)
			if err != nil {
				t.Fatalf("BuildAttribute: %v", err)
			}
			if !hasTriple(triples, rdf.Type(iri, quad.IRI(tt.want))) {
				t.Errorf("missing type %s", tt.want)
			}
		})
	}
}

func TestBuildAttributeValueGating(t *testing.T) {
	ctx := testContext(t).WithModule("MyApp")

	withValue := extract.Attribute{Kind: extract.AttrCustom, Name: "timeout", Value: "5000"}
	iri, triples, err := BuildAttribute(withValue, 0, ctx)
	if err != nil {
		t.Fatalf("BuildAttribute: %v", err)
	}
	if want := quad.IRI(testBase + "MyApp/attribute/0"); iri != want {
		t.Errorf("iri = %q, want %q", iri, want)
	}
	if !hasTriple(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropAttributeValue), "5000")) {
		t.Error("missing attributeValue triple")
	}

	bare := extract.Attribute{Kind: extract.AttrCustom, Name: "marker"}
	_, triples, err = BuildAttribute(bare, 1, ctx)
	if err != nil {
		t.Fatalf("BuildAttribute: %v", err)
	}
	if hasPredicate(triples, quad.IRI(structure.PropAttributeValue)) {
		t.Error("attributeValue emitted for a value-less attribute")
	}
}

func TestBuildAttributeUnknownKind(t *testing.T) {
	ctx := testContext(t).WithModule("MyApp")
	attr := extract.Attribute{Kind: "nonsense", Name: "x"}

	if _, _, err := BuildAttribute(attr, 0, ctx); err == nil {
		t.Error("expected an error for an unknown attribute kind")
	}
}
