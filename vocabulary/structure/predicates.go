package structure

import "github.com/c360studio/semstreams/vocabulary"

// Structure predicates in semstreams dotted notation. These mirror the IRI
// constants for components that speak the semstreams triple form rather than
// full RDF terms.
const (
	// CodeBelongs links a child entity to its containing entity.
	CodeBelongs = "code.structure.belongs"

	// CodeContains links a module to a contained function.
	CodeContains = "code.structure.contains"

	// CodeFunctionName is the bare function name without arity.
	CodeFunctionName = "code.structure.function_name"

	// CodeArity is the declared arity of a function.
	CodeArity = "code.structure.arity"

	// CodeClauseOrder is the 1-indexed position of a clause.
	CodeClauseOrder = "code.structure.clause_order"

	// CodeCalls links a call site to its target function.
	CodeCalls = "code.relationship.calls"

	// CodeImplements links an implementing module to a behaviour.
	CodeImplements = "code.relationship.implements"

	// CodeDelegates links a delegated function to its target.
	CodeDelegates = "code.relationship.delegates"
)

func init() {
	vocabulary.Register(CodeBelongs,
		vocabulary.WithDescription("Links child code entity to its parent (function to module, clause to function)"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropBelongsTo))

	vocabulary.Register(CodeContains,
		vocabulary.WithDescription("Links a module to a function it contains"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropContainsFunction))

	vocabulary.Register(CodeFunctionName,
		vocabulary.WithDescription("Function name without arity suffix"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropFunctionName))

	vocabulary.Register(CodeArity,
		vocabulary.WithDescription("Declared arity of a function"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(PropArity))

	vocabulary.Register(CodeClauseOrder,
		vocabulary.WithDescription("1-indexed position of a clause within its function"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(PropClauseOrder))

	vocabulary.Register(CodeCalls,
		vocabulary.WithDescription("Links a call site to the called function"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropCallsFunction))

	vocabulary.Register(CodeImplements,
		vocabulary.WithDescription("Links an implementing module to a behaviour"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropImplementsBehaviour))

	vocabulary.Register(CodeDelegates,
		vocabulary.WithDescription("Links a delegated function to its delegation target"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropDelegatesTo))
}
