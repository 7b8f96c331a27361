// Package core provides vocabulary terms shared by all code entity kinds:
// naming, documentation, and source locations.
package core

// Namespace is the base IRI prefix for core vocabulary terms.
const Namespace = "https://semcode.dev/ontology/core/"

// Standard ontology IRI constants for mappings.
const (
	// DcTitle is the Dublin Core title property.
	DcTitle = "http://purl.org/dc/terms/title"

	// DcDescription is the Dublin Core description property.
	DcDescription = "http://purl.org/dc/terms/description"
)

// Class IRIs.
const (
	// ClassSourceLocation represents a span of source text.
	// Always a blank node attached via PropHasSourceLocation.
	ClassSourceLocation = Namespace + "SourceLocation"
)

// Object property IRIs.
const (
	// PropHasSourceLocation links an entity to its source location.
	// Emitted only when both a location and a file path are known.
	PropHasSourceLocation = Namespace + "hasSourceLocation"
)

// Data property IRIs.
const (
	// PropDocumentation is the docstring attached to a module or function.
	PropDocumentation = Namespace + "documentation"

	// PropFilePath is the file path relative to the project root.
	PropFilePath = Namespace + "filePath"

	// PropStartLine is the 1-indexed first line of a source span.
	PropStartLine = Namespace + "startLine"

	// PropEndLine is the 1-indexed last line of a source span.
	PropEndLine = Namespace + "endLine"

	// PropStartColumn is the 1-indexed first column of a source span.
	PropStartColumn = Namespace + "startColumn"

	// PropEndColumn is the 1-indexed last column of a source span.
	PropEndColumn = Namespace + "endColumn"
)
