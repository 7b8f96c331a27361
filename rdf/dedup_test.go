package rdf

import (
	"testing"

	"github.com/cayleygraph/quad"
)

func sampleTriples() []Triple {
	s := quad.IRI("https://example.org/a")
	return []Triple{
		Type(s, quad.IRI("https://example.org/Class")),
		DatatypeProperty(s, quad.IRI("https://example.org/name"), "a"),
		ObjectProperty(s, quad.IRI("https://example.org/knows"), quad.IRI("https://example.org/b")),
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	set := sampleTriples()

	once := Deduplicate(set)
	thrice := Deduplicate(set, set, set)

	if len(once) != len(set) {
		t.Fatalf("len(Deduplicate(T)) = %d, want %d", len(once), len(set))
	}
	if len(thrice) != len(once) {
		t.Errorf("len(Deduplicate(T,T,T)) = %d, want %d", len(thrice), len(once))
	}
}

func TestDeduplicatePreservesFirstOccurrenceOrder(t *testing.T) {
	set := sampleTriples()
	shuffledDup := []Triple{set[2], set[0]}

	got := Deduplicate(set, shuffledDup)

	if len(got) != len(set) {
		t.Fatalf("len = %d, want %d", len(got), len(set))
	}
	for i := range set {
		if got[i] != set[i] {
			t.Errorf("triple %d = %+v, want %+v", i, got[i], set[i])
		}
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	if got := Deduplicate(); len(got) != 0 {
		t.Errorf("Deduplicate() = %v, want empty", got)
	}
	if got := Deduplicate(nil, nil); len(got) != 0 {
		t.Errorf("Deduplicate(nil, nil) = %v, want empty", got)
	}
}
