package rdf

import (
	"testing"

	"github.com/cayleygraph/quad"
)

func TestBuildListEmpty(t *testing.T) {
	head, triples := BuildList(nil)

	if head != Nil {
		t.Errorf("head = %v, want rdf:nil", head)
	}
	if len(triples) != 0 {
		t.Errorf("len(triples) = %d, want 0", len(triples))
	}
}

func TestBuildListShape(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		items := make([]quad.Value, n)
		for i := range items {
			items[i] = quad.IRI("https://example.org/item/" + string(rune('a'+i)))
		}

		head, triples := BuildList(items)

		if head == Nil {
			t.Fatalf("n=%d: head is rdf:nil", n)
		}
		if len(triples) != 2*n {
			t.Errorf("n=%d: len(triples) = %d, want %d", n, len(triples), 2*n)
		}

		var firsts, rests, nilRests int
		for _, tr := range triples {
			switch tr.Predicate {
			case First:
				firsts++
			case Rest:
				rests++
				if tr.Object == Nil {
					nilRests++
				}
			}
		}
		if firsts != n {
			t.Errorf("n=%d: first triples = %d, want %d", n, firsts, n)
		}
		if rests != n {
			t.Errorf("n=%d: rest triples = %d, want %d", n, rests, n)
		}
		if nilRests != 1 {
			t.Errorf("n=%d: rest->nil triples = %d, want 1", n, nilRests)
		}
	}
}

func TestBuildListPreservesOrder(t *testing.T) {
	items := []quad.Value{
		quad.IRI("https://example.org/p/0"),
		quad.IRI("https://example.org/p/1"),
		quad.IRI("https://example.org/p/2"),
	}

	head, triples := BuildList(items)

	// Walk the chain and collect elements in list order.
	firstOf := make(map[quad.Value]quad.Value)
	restOf := make(map[quad.Value]quad.Value)
	for _, tr := range triples {
		switch tr.Predicate {
		case First:
			firstOf[tr.Subject] = tr.Object
		case Rest:
			restOf[tr.Subject] = tr.Object
		}
	}

	var got []quad.Value
	for cell := head; cell != quad.Value(Nil); cell = restOf[cell] {
		got = append(got, firstOf[cell])
	}

	if len(got) != len(items) {
		t.Fatalf("walked %d elements, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], items[i])
		}
	}
}
