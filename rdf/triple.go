package rdf

import (
	"strings"

	"github.com/cayleygraph/quad"
	rdfvoc "github.com/cayleygraph/quad/voc/rdf"
)

// Well-known RDF terms in full (non-prefixed) form.
var (
	// TypePredicate is rdf:type.
	TypePredicate = quad.IRI(rdfvoc.Type).Full()

	// First is rdf:first, the list head pointer.
	First = quad.IRI(rdfvoc.First).Full()

	// Rest is rdf:rest, the list tail pointer.
	Rest = quad.IRI(rdfvoc.Rest).Full()

	// Nil is rdf:nil, the empty-list terminator.
	Nil = quad.IRI(rdfvoc.Nil).Full()
)

// Triple is a single RDF statement. Subject is an IRI or blank node,
// Predicate is always an IRI, Object is an IRI, blank node, or literal.
type Triple struct {
	Subject   quad.Value
	Predicate quad.IRI
	Object    quad.Value
}

// Type returns the rdf:type triple asserting that subject is an instance
// of class.
func Type(subject quad.Value, class quad.IRI) Triple {
	return Triple{Subject: subject, Predicate: TypePredicate, Object: class}
}

// DatatypeProperty returns a triple whose object is value coerced to a
// typed literal. The datatype is inferred from the native Go type.
func DatatypeProperty(subject quad.Value, predicate quad.IRI, value any) Triple {
	return Triple{Subject: subject, Predicate: predicate, Object: ToLiteral(value)}
}

// TypedDatatypeProperty returns a triple whose object is the string form of
// value tagged with an explicit datatype IRI.
func TypedDatatypeProperty(subject quad.Value, predicate quad.IRI, value string, datatype quad.IRI) Triple {
	return Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    quad.TypedString{Value: quad.String(value), Type: datatype},
	}
}

// ObjectProperty returns a triple linking subject to another resource.
// The object must be an IRI or blank node; passing a literal is a
// programming error.
func ObjectProperty(subject quad.Value, predicate quad.IRI, object quad.Value) Triple {
	return Triple{Subject: subject, Predicate: predicate, Object: object}
}

// FilterBySubject returns the triples whose subject equals subject,
// preserving input order.
func FilterBySubject(triples []Triple, subject quad.Value) []Triple {
	var out []Triple
	for _, t := range triples {
		if t.Subject == subject {
			out = append(out, t)
		}
	}
	return out
}

// InNamespace reports whether iri falls under the given namespace prefix.
func InNamespace(iri quad.IRI, namespace string) bool {
	return strings.HasPrefix(string(iri), namespace)
}
