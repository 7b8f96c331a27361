package builder

import (
	"testing"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/evolution"
	"github.com/c360studio/semcode/vocabulary/prov"
)

func TestBuildActivityCommit(t *testing.T) {
	ctx := testContext(t)
	a := extract.Activity{
		ID:        "commit-abc123",
		Kind:      extract.ActivityCommit,
		Label:     "Extract user validation",
		Agent:     "alice",
		CommitSHA: "abc123",
		StartedAt: "2024-03-01T12:00:00Z",
		EndedAt:   "2024-03-01T12:00:05Z",
		Generated: []string{"MyApp/validate/1"},
		Affected:  []string{"MyApp"},
	}

	iri, triples, err := BuildActivity(a, ctx)
	if err != nil {
		t.Fatalf("BuildActivity: %v", err)
	}

	if want := quad.IRI(testBase + "activity/commit-abc123"); iri != want {
		t.Errorf("iri = %q, want %q", iri, want)
	}

	agentIRI := quad.IRI(testBase + "agent/alice")
	for _, tr := range []rdf.Triple{
		rdf.Type(iri, quad.IRI(prov.ClassActivity)),
		rdf.Type(iri, quad.IRI(evolution.ClassCommit)),
		rdf.DatatypeProperty(iri, quad.IRI(evolution.PropCommitSHA), "abc123"),
		rdf.ObjectProperty(iri, quad.IRI(prov.PropWasAssociatedWith), agentIRI),
		rdf.Type(agentIRI, quad.IRI(prov.ClassAgent)),
		rdf.ObjectProperty(iri, quad.IRI(prov.PropGenerated), quad.IRI(testBase+"MyApp/validate/1")),
		rdf.ObjectProperty(iri, quad.IRI(evolution.PropAffectsEntity), quad.IRI(testBase+"MyApp")),
		rdf.TypedDatatypeProperty(iri, quad.IRI(prov.PropStartedAtTime), "2024-03-01T12:00:00Z", rdf.XSDDateTime),
	} {
		if !hasTriple(triples, tr) {
			t.Errorf("missing triple %+v", tr)
		}
	}
}

func TestBuildActivityMinimal(t *testing.T) {
	ctx := testContext(t)
	a := extract.Activity{ID: "gen-1", Kind: extract.ActivityGeneric}

	iri, triples, err := BuildActivity(a, ctx)
	if err != nil {
		t.Fatalf("BuildActivity: %v", err)
	}

	if !hasTriple(triples, rdf.Type(iri, quad.IRI(evolution.ClassActivity))) {
		t.Error("missing generic Activity type triple")
	}
	for _, p := range []quad.IRI{
		quad.IRI(evolution.PropActivityLabel),
		quad.IRI(evolution.PropCommitSHA),
		quad.IRI(prov.PropWasAssociatedWith),
		quad.IRI(prov.PropStartedAtTime),
	} {
		if hasPredicate(triples, p) {
			t.Errorf("optional predicate %s emitted for a minimal activity", p)
		}
	}
}

func TestBuildActivityAbsoluteEntityRefs(t *testing.T) {
	ctx := testContext(t)
	a := extract.Activity{
		ID:   "gen-2",
		Kind: extract.ActivityRefactor,
		Used: []string{"https://other.org/graph#Entity"},
	}

	iri, triples, err := BuildActivity(a, ctx)
	if err != nil {
		t.Fatalf("BuildActivity: %v", err)
	}

	if !hasTriple(triples, rdf.ObjectProperty(iri, quad.IRI(prov.PropUsed), quad.IRI("https://other.org/graph#Entity"))) {
		t.Error("absolute entity reference was rewritten")
	}
}

func TestBuildActivityRequiresID(t *testing.T) {
	if _, _, err := BuildActivity(extract.Activity{Kind: extract.ActivityCommit}, testContext(t)); err == nil {
		t.Error("expected an error for an activity without an ID")
	}
}
