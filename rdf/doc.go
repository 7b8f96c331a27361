// Package rdf provides the triple primitives shared by every builder:
// triple constructors, literal coercion, blank-node allocation, RDF list
// encoding, and deduplication.
//
// Terms use the github.com/cayleygraph/quad value model: quad.IRI for
// resources, quad.BNode for anonymous nodes, and the quad literal types
// (String, Int, Float, Bool, Time, TypedString) for values. Triples are
// plain value objects; equality is structural.
package rdf
