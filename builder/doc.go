// Package builder turns extraction records into RDF triples under a shared
// IRI-construction discipline.
//
// Every builder is a pure function of (record, Context) to (entity IRI,
// triples). IRIs are minted hierarchically from the naming context: the
// enclosing module path when known, the parent entity IRI otherwise, a
// file-path fallback as a last resort, followed by a type-specific local
// path such as name/arity or clause/0. Identical inputs always yield
// byte-identical IRIs, which is what lets independently built triple sets
// cross-reference each other.
//
// Positional identifiers embedded in IRI paths are 0-indexed; the
// corresponding ordinal property values (clauseOrder, parameterPosition)
// are 1-indexed. Optional record fields suppress their triples entirely
// rather than emitting placeholders.
package builder
