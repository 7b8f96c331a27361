package structure

// Namespace is the base IRI prefix for structure vocabulary terms.
const Namespace = "https://semcode.dev/ontology/structure/"

// Class IRIs for module-level entities.
const (
	// ClassModule represents an Elixir module.
	ClassModule = Namespace + "Module"

	// ClassBehaviour represents a module that declares callbacks.
	// A behaviour declaration is identified with its owning module.
	ClassBehaviour = Namespace + "Behaviour"
)

// Class IRIs for functions, selected by definition kind and visibility.
const (
	// ClassPublicFunction represents a def function.
	ClassPublicFunction = Namespace + "PublicFunction"

	// ClassPrivateFunction represents a defp function.
	ClassPrivateFunction = Namespace + "PrivateFunction"

	// ClassGuardFunction represents a defguard or defguardp definition.
	ClassGuardFunction = Namespace + "GuardFunction"

	// ClassDelegatedFunction represents a defdelegate definition.
	ClassDelegatedFunction = Namespace + "DelegatedFunction"
)

// Class IRIs for clause structure.
const (
	// ClassFunctionClause represents one clause of a multi-clause function.
	ClassFunctionClause = Namespace + "FunctionClause"

	// ClassFunctionHead represents the head (pattern) part of a clause.
	// Always a blank node.
	ClassFunctionHead = Namespace + "FunctionHead"

	// ClassFunctionBody represents the body part of a clause.
	// Always a blank node.
	ClassFunctionBody = Namespace + "FunctionBody"

	// ClassGuardClause represents a when-guard attached to a clause head.
	// Always a blank node.
	ClassGuardClause = Namespace + "GuardClause"
)

// Class IRIs for parameters, selected by pattern shape.
const (
	// ClassParameter represents a plain variable binding.
	ClassParameter = Namespace + "Parameter"

	// ClassDefaultParameter represents a parameter with a \\ default.
	ClassDefaultParameter = Namespace + "DefaultParameter"

	// ClassPatternParameter represents a destructuring or pin pattern.
	ClassPatternParameter = Namespace + "PatternParameter"
)

// Class IRIs for callbacks, selected by optionality and macro-ness.
const (
	ClassCallback         = Namespace + "Callback"
	ClassOptionalCallback = Namespace + "OptionalCallback"
	ClassMacroCallback    = Namespace + "MacroCallback"
)

// Class IRIs for call-graph edges.
const (
	// ClassLocalCall represents a call to a function in the same module.
	// Dynamic calls (apply/3, computed module) are typed LocalCall as a
	// documented approximation.
	ClassLocalCall = Namespace + "LocalCall"

	// ClassRemoteCall represents a qualified Mod.fun(...) call.
	ClassRemoteCall = Namespace + "RemoteCall"
)

// Class IRIs for anonymous functions and captures.
const (
	ClassAnonymousFunction = Namespace + "AnonymousFunction"

	// ClassClosure marks an anonymous function that references at least one
	// free variable.
	ClassClosure = Namespace + "Closure"

	// ClassCapturedVariable represents one free variable captured by a closure.
	ClassCapturedVariable = Namespace + "CapturedVariable"

	// ClassFunctionCapture represents a &Mod.fun/arity or &(...) capture.
	ClassFunctionCapture = Namespace + "FunctionCapture"
)

// Class IRIs for module attributes.
const (
	ClassAttribute          = Namespace + "Attribute"
	ClassModuleDoc          = Namespace + "ModuleDocAttribute"
	ClassDocAttribute       = Namespace + "DocAttribute"
	ClassDeprecatedAttr     = Namespace + "DeprecatedAttribute"
	ClassSinceAttribute     = Namespace + "SinceAttribute"
	ClassDeriveAttribute    = Namespace + "DeriveAttribute"
	ClassBehaviourAttribute = Namespace + "BehaviourAttribute"
)

// Class IRIs for macro invocations.
const (
	ClassMacroInvocation = Namespace + "MacroInvocation"
)

// Class IRIs for dependency directives.
const (
	ClassAlias     = Namespace + "Alias"
	ClassImport    = Namespace + "Import"
	ClassRequire   = Namespace + "Require"
	ClassUse       = Namespace + "Use"
	ClassUseOption = Namespace + "UseOption"
)

// Class IRIs for control-flow expressions.
const (
	// ClassConditional represents if/unless.
	ClassConditional = Namespace + "ConditionalExpression"

	ClassCondExpression    = Namespace + "CondExpression"
	ClassCaseExpression    = Namespace + "CaseExpression"
	ClassWithExpression    = Namespace + "WithExpression"
	ClassReceiveExpression = Namespace + "ReceiveExpression"
	ClassComprehension     = Namespace + "Comprehension"
)

// Class IRIs for exception handling.
const (
	ClassTryExpression   = Namespace + "TryExpression"
	ClassRaiseExpression = Namespace + "RaiseExpression"
	ClassThrowExpression = Namespace + "ThrowExpression"
)

// Class IRIs for operator expressions, selected by operator symbol.
const (
	ClassArithmeticOperator   = Namespace + "ArithmeticOperator"
	ClassComparisonOperator   = Namespace + "ComparisonOperator"
	ClassLogicalOperator      = Namespace + "LogicalOperator"
	ClassCaptureOperator      = Namespace + "CaptureOperator"
	ClassStringConcatOperator = Namespace + "StringConcatOperator"
	ClassInOperator           = Namespace + "InOperator"
	ClassPipeOperator         = Namespace + "PipeOperator"
	ClassMatchOperator        = Namespace + "MatchOperator"
)

// Object property IRIs.
const (
	// PropBelongsTo links a child entity to its containing entity.
	// Domain: any structure entity, Range: ClassModule or a function class.
	PropBelongsTo = Namespace + "belongsTo"

	// PropContainsFunction is the inverse of PropBelongsTo for functions.
	PropContainsFunction = Namespace + "containsFunction"

	// PropHasClause links a function to one of its clauses.
	PropHasClause = Namespace + "hasClause"

	// PropHasFunctionHead links a clause to its blank-node head.
	PropHasFunctionHead = Namespace + "hasFunctionHead"

	// PropHasFunctionBody links a clause to its blank-node body.
	PropHasFunctionBody = Namespace + "hasFunctionBody"

	// PropHasParameters links a clause head to the RDF list of parameters.
	PropHasParameters = Namespace + "hasParameters"

	// PropHasGuard links a clause head to its blank-node guard. Control-flow
	// builders reuse the same term as a presence marker with literal true.
	PropHasGuard = Namespace + "hasGuard"

	// PropDelegatesTo links a defdelegate to its target function.
	PropDelegatesTo = Namespace + "delegatesTo"

	// PropDefinesCallback links a behaviour module to a callback entity.
	PropDefinesCallback = Namespace + "definesCallback"

	// PropImplementsBehaviour links an implementing module to a behaviour.
	PropImplementsBehaviour = Namespace + "implementsBehaviour"

	// PropImplementsCallback links an implementing function to a callback.
	PropImplementsCallback = Namespace + "implementsCallback"

	// PropCallsFunction links a call edge to the synthesized target function.
	PropCallsFunction = Namespace + "callsFunction"

	// PropCapturesVariable links a closure to a captured variable entity.
	PropCapturesVariable = Namespace + "capturesVariable"

	// PropHasOption links a use directive to one of its option sub-entities.
	PropHasOption = Namespace + "hasOption"

	// PropAliasModule links an alias directive to the aliased module.
	PropAliasModule = Namespace + "aliasModule"

	// PropImportModule links an import directive to the imported module.
	PropImportModule = Namespace + "importModule"

	// PropRequireModule links a require directive to the required module.
	PropRequireModule = Namespace + "requireModule"

	// PropUseModule links a use directive to the used module.
	PropUseModule = Namespace + "useModule"

	// PropImportsFunction links an import to an explicitly included function.
	PropImportsFunction = Namespace + "importsFunction"

	// PropExcludesFunction links an import to an explicitly excluded function.
	PropExcludesFunction = Namespace + "excludesFunction"

	// PropHasLeftOperand links a binary operator to its left operand entity.
	PropHasLeftOperand = Namespace + "hasLeftOperand"

	// PropHasRightOperand links a binary operator to its right operand entity.
	PropHasRightOperand = Namespace + "hasRightOperand"

	// PropHasOperand links a unary operator to its operand entity.
	PropHasOperand = Namespace + "hasOperand"

	// PropRaisesException links a raise expression to the exception module,
	// when the module is statically known.
	PropRaisesException = Namespace + "raisesException"
)

// Data property IRIs for functions and clauses.
const (
	PropFunctionName      = Namespace + "functionName"
	PropArity             = Namespace + "arity"
	PropMinArity          = Namespace + "minArity"
	PropClauseOrder       = Namespace + "clauseOrder"
	PropParameterName     = Namespace + "parameterName"
	PropParameterPosition = Namespace + "parameterPosition"
	PropVariableName      = Namespace + "variableName"
)

// Data property IRIs for call edges.
const (
	// PropModuleName is the dot-joined remote module name, or the raw atom
	// text for built-in runtime calls.
	PropModuleName = Namespace + "moduleName"
)

// Data property IRIs for attributes.
const (
	PropAttributeName  = Namespace + "attributeName"
	PropAttributeValue = Namespace + "attributeValue"
)

// Data property IRIs for captures.
const (
	PropCaptureModuleName   = Namespace + "captureModuleName"
	PropCaptureFunctionName = Namespace + "captureFunctionName"
	PropCaptureArity        = Namespace + "captureArity"
	PropCaptureIndex        = Namespace + "captureIndex"
)

// Data property IRIs for macro invocations.
const (
	PropMacroName        = Namespace + "macroName"
	PropMacroArity       = Namespace + "macroArity"
	PropMacroCategory    = Namespace + "macroCategory"
	PropMacroModule      = Namespace + "macroModule"
	PropResolutionStatus = Namespace + "resolutionStatus"
)

// Data property IRIs for directives.
const (
	PropAliasName       = Namespace + "aliasName"
	PropIsFullImport    = Namespace + "isFullImport"
	PropImportType      = Namespace + "importType"
	PropOptionKey       = Namespace + "optionKey"
	PropOptionValue     = Namespace + "optionValue"
	PropOptionValueType = Namespace + "optionValueType"
	PropIsDynamicOption = Namespace + "isDynamicOption"
)

// Presence-gated marker IRIs for control flow and exception handling.
// Markers are emitted with literal true when the structural feature is
// present and omitted entirely otherwise.
const (
	PropHasCondition    = Namespace + "hasCondition"
	PropHasThenBranch   = Namespace + "hasThenBranch"
	PropHasElseBranch   = Namespace + "hasElseBranch"
	PropHasElseClause   = Namespace + "hasElseClause"
	PropHasAfterTimeout = Namespace + "hasAfterTimeout"
	PropHasGenerator    = Namespace + "hasGenerator"
	PropHasFilter       = Namespace + "hasFilter"
	PropHasIntoOption   = Namespace + "hasIntoOption"
	PropHasReduceOption = Namespace + "hasReduceOption"
	PropHasUniqOption   = Namespace + "hasUniqOption"
	PropHasRescueClause = Namespace + "hasRescueClause"
	PropHasCatchClause  = Namespace + "hasCatchClause"
	PropHasAfterClause  = Namespace + "hasAfterClause"
	PropHasMessage      = Namespace + "hasMessage"
)

// Explicit boolean flag IRIs. Unlike markers these are always emitted with
// true or false.
const (
	PropIsAccumulating = Namespace + "isAccumulating"
)

// Data property IRIs for operator expressions.
const (
	PropOperatorSymbol = Namespace + "operatorSymbol"
)
