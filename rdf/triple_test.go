package rdf

import (
	"testing"

	"github.com/cayleygraph/quad"
)

func TestTypeTriple(t *testing.T) {
	s := quad.IRI("https://example.org/e")
	c := quad.IRI("https://example.org/Class")

	got := Type(s, c)

	if got.Predicate != TypePredicate {
		t.Errorf("predicate = %v, want rdf:type", got.Predicate)
	}
	if got.Subject != quad.Value(s) || got.Object != quad.Value(c) {
		t.Errorf("triple = %+v, want subject %v object %v", got, s, c)
	}
}

func TestFilterBySubject(t *testing.T) {
	a := quad.IRI("https://example.org/a")
	b := quad.IRI("https://example.org/b")
	triples := []Triple{
		Type(a, quad.IRI("https://example.org/C")),
		Type(b, quad.IRI("https://example.org/C")),
		DatatypeProperty(a, quad.IRI("https://example.org/name"), "a"),
	}

	got := FilterBySubject(triples, a)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, tr := range got {
		if tr.Subject != quad.Value(a) {
			t.Errorf("subject = %v, want %v", tr.Subject, a)
		}
	}
}

func TestInNamespace(t *testing.T) {
	tests := []struct {
		iri       quad.IRI
		namespace string
		want      bool
	}{
		{"https://example.org/code#MyApp", "https://example.org/code#", true},
		{"https://example.org/code#MyApp", "https://other.org/", false},
		{"", "https://example.org/", false},
	}

	for _, tt := range tests {
		if got := InNamespace(tt.iri, tt.namespace); got != tt.want {
			t.Errorf("InNamespace(%q, %q) = %v, want %v", tt.iri, tt.namespace, got, tt.want)
		}
	}
}
