package builder

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/evolution"
	"github.com/c360studio/semcode/vocabulary/prov"
)

// ActivityIRI mints the IRI for an evolution activity.
func ActivityIRI(baseIRI, id string) quad.IRI {
	return entityIRI(baseIRI, "activity", EscapeLocalName(id))
}

// AgentIRI mints the IRI for the agent associated with an activity.
func AgentIRI(baseIRI, agent string) quad.IRI {
	return entityIRI(baseIRI, "agent", EscapeLocalName(agent))
}

// activityClass selects the evolution class for an activity kind. Every
// activity is additionally typed prov:Activity.
func activityClass(kind extract.ActivityKind) quad.IRI {
	switch kind {
	case extract.ActivityCommit:
		return quad.IRI(evolution.ClassCommit)
	case extract.ActivityRefactor:
		return quad.IRI(evolution.ClassRefactor)
	case extract.ActivityRename:
		return quad.IRI(evolution.ClassRename)
	default:
		return quad.IRI(evolution.ClassActivity)
	}
}

// BuildActivity emits the triples for one evolution activity: PROV typing
// and associations plus the evolution-specific class and literals. Entity
// references in Used/Generated/Affected are taken as-is when they are full
// IRIs and resolved under the base IRI otherwise.
func BuildActivity(a extract.Activity, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	if a.ID == "" {
		return "", nil, fmt.Errorf("builder: activity without an ID")
	}

	iri := ActivityIRI(ctx.BaseIRI(), a.ID)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(prov.ClassActivity)),
		rdf.Type(iri, activityClass(a.Kind)),
	}

	if a.Label != "" {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(evolution.PropActivityLabel), a.Label))
	}
	if a.CommitSHA != "" {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(evolution.PropCommitSHA), a.CommitSHA))
	}

	if a.Agent != "" {
		agentIRI := AgentIRI(ctx.BaseIRI(), a.Agent)
		triples = append(triples,
			rdf.ObjectProperty(iri, quad.IRI(prov.PropWasAssociatedWith), agentIRI),
			rdf.Type(agentIRI, quad.IRI(prov.ClassAgent)),
		)
	}

	if a.StartedAt != "" {
		triples = append(triples, rdf.TypedDatatypeProperty(iri, quad.IRI(prov.PropStartedAtTime), a.StartedAt, rdf.XSDDateTime))
	}
	if a.EndedAt != "" {
		triples = append(triples, rdf.TypedDatatypeProperty(iri, quad.IRI(prov.PropEndedAtTime), a.EndedAt, rdf.XSDDateTime))
	}

	for _, used := range a.Used {
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(prov.PropUsed), entityRef(ctx.BaseIRI(), used)))
	}
	for _, generated := range a.Generated {
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(prov.PropGenerated), entityRef(ctx.BaseIRI(), generated)))
	}
	for _, affected := range a.Affected {
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(evolution.PropAffectsEntity), entityRef(ctx.BaseIRI(), affected)))
	}

	return iri, rdf.Deduplicate(triples), nil
}

// entityRef resolves an activity's entity reference: absolute IRIs pass
// through, relative fragments resolve under the base IRI.
func entityRef(baseIRI, ref string) quad.IRI {
	if len(ref) > 8 && (ref[:7] == "http://" || ref[:8] == "https://") {
		return quad.IRI(ref)
	}
	return quad.IRI(baseIRI + ref)
}

// BuildActivities builds every activity in input order.
func BuildActivities(activities []extract.Activity, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(activities))
	var all []rdf.Triple
	for _, a := range activities {
		iri, triples, err := BuildActivity(a, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}
