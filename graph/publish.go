// Package graph publishes built code entities to the knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/semcode/rdf"
)

// Subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// TripleSource identifies semcode as the origin of published facts.
const TripleSource = "semcode.builder"

// EntityIngestMessage is the message format for graph ingestion.
// Matches the format used by other semstreams components.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Flatten converts RDF triples to the semstreams triple form: IRIs and
// blank nodes render to strings, literals keep their native values.
func Flatten(triples []rdf.Triple) []message.Triple {
	now := time.Now()
	out := make([]message.Triple, 0, len(triples))
	for _, t := range triples {
		out = append(out, message.Triple{
			Subject:    flattenTerm(t.Subject),
			Predicate:  string(t.Predicate),
			Object:     flattenObject(t.Object),
			Source:     TripleSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}
	return out
}

// flattenTerm renders an IRI or blank node as a string identifier.
func flattenTerm(v quad.Value) string {
	switch term := v.(type) {
	case quad.IRI:
		return string(term)
	case quad.BNode:
		return "_:" + string(term)
	default:
		return quad.StringOf(v)
	}
}

// flattenObject keeps literal values native and renders resources like
// flattenTerm.
func flattenObject(v quad.Value) any {
	switch o := v.(type) {
	case quad.IRI:
		return string(o)
	case quad.BNode:
		return "_:" + string(o)
	case quad.String:
		return string(o)
	case quad.Int:
		return int64(o)
	case quad.Float:
		return float64(o)
	case quad.Bool:
		return bool(o)
	case quad.Time:
		return time.Time(o)
	case quad.TypedString:
		return string(o.Value)
	default:
		return quad.StringOf(v)
	}
}

// PublishEntity publishes one built entity's triples to the knowledge
// graph. A nil NATS client skips publishing (graceful degradation).
func PublishEntity(ctx context.Context, nc *natsclient.Client, entityIRI quad.IRI, triples []rdf.Triple) error {
	if nc == nil {
		return nil
	}
	if entityIRI == "" {
		return fmt.Errorf("publish entity: empty entity IRI")
	}

	msg := EntityIngestMessage{
		ID:        string(entityIRI),
		Triples:   Flatten(triples),
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal entity %s: %w", entityIRI, err)
	}

	if err := nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
		return fmt.Errorf("publish entity %s: %w", entityIRI, err)
	}

	entitiesPublished.Inc()
	triplesPublished.Add(float64(len(msg.Triples)))

	return nil
}
