// Package extract defines the typed records produced by the AST extraction
// layer and consumed by the builders. Records are plain immutable values;
// the parser that produces them lives outside this module.
package extract

// Location is a source span. Lines and columns are 1-indexed.
type Location struct {
	StartLine   int `json:"start_line"`
	EndLine     int `json:"end_line"`
	StartColumn int `json:"start_column,omitempty"`
	EndColumn   int `json:"end_column,omitempty"`
}

// FunctionKind discriminates the definition form of a function.
type FunctionKind string

const (
	KindDef         FunctionKind = "def"
	KindDefp        FunctionKind = "defp"
	KindDefguard    FunctionKind = "defguard"
	KindDefguardp   FunctionKind = "defguardp"
	KindDefdelegate FunctionKind = "defdelegate"
)

// DelegateTarget names the function a defdelegate forwards to.
type DelegateTarget struct {
	Module   []string `json:"module"`
	Function string   `json:"function"`
	Arity    int      `json:"arity"`
}

// Function is a named function definition.
type Function struct {
	Name     string          `json:"name"`
	Arity    int             `json:"arity"`
	MinArity int             `json:"min_arity"`
	Kind     FunctionKind    `json:"kind"`
	Doc      *string         `json:"doc,omitempty"`
	Delegate *DelegateTarget `json:"delegate,omitempty"`
	Clauses  []Clause        `json:"clauses,omitempty"`
	Body     *FunctionBody   `json:"body,omitempty"`
	Location *Location       `json:"location,omitempty"`
}

// FunctionBody bundles the control-flow, exception-handling, and
// expression records extracted from one function's body.
type FunctionBody struct {
	Conditionals   []Conditional       `json:"conditionals,omitempty"`
	Conds          []CondExpression    `json:"conds,omitempty"`
	Cases          []CaseExpression    `json:"cases,omitempty"`
	Withs          []WithExpression    `json:"withs,omitempty"`
	Receives       []ReceiveExpression `json:"receives,omitempty"`
	Comprehensions []Comprehension     `json:"comprehensions,omitempty"`
	Tries          []TryExpression     `json:"tries,omitempty"`
	Raises         []RaiseExpression   `json:"raises,omitempty"`
	Throws         []ThrowExpression   `json:"throws,omitempty"`
	Expressions    []*Expr             `json:"expressions,omitempty"`
}

// ParameterShape discriminates how a parameter binds.
type ParameterShape string

const (
	// ShapeVariable is a plain variable binding.
	ShapeVariable ParameterShape = "variable"
	// ShapeDefault is a binding with a \\ default value.
	ShapeDefault ParameterShape = "default"
	// ShapePattern is a destructuring or pin pattern.
	ShapePattern ParameterShape = "pattern"
)

// Parameter is one parameter of a clause head.
type Parameter struct {
	Name  string         `json:"name,omitempty"`
	Shape ParameterShape `json:"shape"`
}

// Clause is one clause of a function or anonymous function.
type Clause struct {
	Parameters []Parameter `json:"parameters,omitempty"`
	Guard      *Expr       `json:"guard,omitempty"`
	Location   *Location   `json:"location,omitempty"`
}

// AttributeKind discriminates module attribute subkinds.
type AttributeKind string

const (
	AttrDoc        AttributeKind = "doc"
	AttrModuleDoc  AttributeKind = "moduledoc"
	AttrDeprecated AttributeKind = "deprecated"
	AttrSince      AttributeKind = "since"
	AttrDerive     AttributeKind = "derive"
	AttrBehaviour  AttributeKind = "behaviour"
	AttrCustom     AttributeKind = "custom"
)

// Attribute is a module attribute declaration.
type Attribute struct {
	Kind     AttributeKind `json:"kind"`
	Name     string        `json:"name"`
	Value    string        `json:"value,omitempty"`
	Location *Location     `json:"location,omitempty"`
}

// Callback is one callback signature of a behaviour.
type Callback struct {
	Name            string `json:"name"`
	Arity           int    `json:"arity"`
	IsOptional      bool   `json:"is_optional"`
	IsMacroCallback bool   `json:"is_macro_callback"`
	Doc             *string `json:"doc,omitempty"`
}

// Behaviour is a behaviour declaration. The declaring module is the
// behaviour entity.
type Behaviour struct {
	Callbacks []Callback `json:"callbacks,omitempty"`
	Location  *Location  `json:"location,omitempty"`
}

// Implementation records that a module declares @behaviour for another
// module, together with the functions it defines.
type Implementation struct {
	Behaviour []string   `json:"behaviour"`
	Functions []Function `json:"functions,omitempty"`
}

// CallKind discriminates call-graph edges.
type CallKind string

const (
	// CallLocal is an unqualified call within the current module.
	CallLocal CallKind = "local"
	// CallRemote is a qualified Mod.fun(...) call.
	CallRemote CallKind = "remote"
	// CallDynamic is a computed-target call (apply/3 and friends).
	CallDynamic CallKind = "dynamic"
)

// FunctionCall is one call-graph edge.
type FunctionCall struct {
	Kind CallKind `json:"kind"`
	Name string   `json:"name"`
	Arity int     `json:"arity"`

	// TargetModule is the dot-joinable module path for remote calls.
	// Empty for local and dynamic calls.
	TargetModule []string `json:"target_module,omitempty"`

	// TargetAtom is the raw atom text for built-in runtime targets
	// (e.g. ":erlang"). Set instead of TargetModule when the callee module
	// is a bare atom.
	TargetAtom string `json:"target_atom,omitempty"`

	Location *Location `json:"location,omitempty"`
}

// AnonymousFunction is a fn ... end expression.
type AnonymousFunction struct {
	Arity   int      `json:"arity"`
	Clauses []Clause `json:"clauses,omitempty"`

	// BodyVariables are the variable names referenced anywhere in the body.
	// The closure pass subtracts parameter bindings to find free variables.
	BodyVariables []string  `json:"body_variables,omitempty"`
	Location      *Location `json:"location,omitempty"`
}

// Capture is a &-capture expression: either a by-reference capture of a
// named function or a positional shorthand like &(&1 + 1).
type Capture struct {
	// Module is the captured function's module for &Mod.fun/arity.
	// Nil for local and positional captures.
	Module   []string  `json:"module,omitempty"`
	Function string    `json:"function,omitempty"`
	Arity    int       `json:"arity"`
	Body     *Expr     `json:"body,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// ConditionalKind discriminates two-branch conditionals.
type ConditionalKind string

const (
	CondIf     ConditionalKind = "if"
	CondUnless ConditionalKind = "unless"
)

// Conditional is an if or unless expression.
type Conditional struct {
	Kind          ConditionalKind `json:"kind"`
	HasCondition  bool            `json:"has_condition"`
	HasThenBranch bool            `json:"has_then_branch"`
	HasElseBranch bool            `json:"has_else_branch"`
	Location      *Location       `json:"location,omitempty"`
}

// CondClause is one clause of a cond expression.
type CondClause struct {
	HasCondition bool `json:"has_condition"`
}

// CondExpression is a cond expression.
type CondExpression struct {
	Clauses  []CondClause `json:"clauses,omitempty"`
	Location *Location    `json:"location,omitempty"`
}

// CaseClause is one clause of a case expression.
type CaseClause struct {
	HasGuard bool `json:"has_guard"`
}

// CaseExpression is a case expression.
type CaseExpression struct {
	Clauses  []CaseClause `json:"clauses,omitempty"`
	Location *Location    `json:"location,omitempty"`
}

// WithClause is one <- binding clause of a with expression.
type WithClause struct {
	HasGuard bool `json:"has_guard"`
}

// WithExpression is a with expression.
type WithExpression struct {
	Clauses       []WithClause `json:"clauses,omitempty"`
	HasElseClause bool         `json:"has_else_clause"`
	Location      *Location    `json:"location,omitempty"`
}

// ReceiveExpression is a receive expression.
type ReceiveExpression struct {
	Clauses         []CaseClause `json:"clauses,omitempty"`
	HasAfterTimeout bool         `json:"has_after_timeout"`
	Location        *Location    `json:"location,omitempty"`
}

// Comprehension is a for comprehension.
type Comprehension struct {
	GeneratorCount  int       `json:"generator_count"`
	FilterCount     int       `json:"filter_count"`
	HasIntoOption   bool      `json:"has_into_option"`
	HasReduceOption bool      `json:"has_reduce_option"`
	HasUniqOption   bool      `json:"has_uniq_option"`
	Location        *Location `json:"location,omitempty"`
}

// TryExpression is a try block with its optional handler sections.
type TryExpression struct {
	HasRescueClause bool      `json:"has_rescue_clause"`
	HasCatchClause  bool      `json:"has_catch_clause"`
	HasAfterClause  bool      `json:"has_after_clause"`
	HasElseClause   bool      `json:"has_else_clause"`
	Location        *Location `json:"location,omitempty"`
}

// RaiseExpression is a raise call.
type RaiseExpression struct {
	// ExceptionModule is the raised exception's module path, when static.
	ExceptionModule []string  `json:"exception_module,omitempty"`
	HasMessage      bool      `json:"has_message"`
	Location        *Location `json:"location,omitempty"`
}

// ThrowExpression is a throw call.
type ThrowExpression struct {
	Location *Location `json:"location,omitempty"`
}

// MacroCategory classifies a macro invocation.
type MacroCategory string

const (
	MacroDefinition  MacroCategory = "definition"
	MacroControlFlow MacroCategory = "control_flow"
	MacroLibrary     MacroCategory = "library"
	MacroQuote       MacroCategory = "quote"
	MacroCustom      MacroCategory = "custom"
)

// MacroResolution is the resolution status of a macro invocation.
type MacroResolution string

const (
	ResolutionKernel     MacroResolution = "kernel"
	ResolutionResolved   MacroResolution = "resolved"
	ResolutionUnresolved MacroResolution = "unresolved"
)

// MacroInvocation is one macro call site.
type MacroInvocation struct {
	Name       string          `json:"name"`
	Arity      int             `json:"arity"`
	Category   MacroCategory   `json:"category"`
	Resolution MacroResolution `json:"resolution"`

	// Module is the resolved macro module path; nil when unresolved.
	Module []string `json:"module,omitempty"`

	// InvocationIndex is the per-module invocation counter assigned during
	// extraction. When nil the source line number stands in.
	InvocationIndex *int      `json:"invocation_index,omitempty"`
	Location        *Location `json:"location,omitempty"`
}

// AliasDirective is an alias declaration.
type AliasDirective struct {
	Module   []string  `json:"module"`
	As       string    `json:"as,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// FunctionRef is a name/arity pair in an import's only/except list.
type FunctionRef struct {
	Name  string `json:"name"`
	Arity int    `json:"arity"`
}

// ImportCategory is a bulk import selector: :functions, :macros, :sigils.
type ImportCategory string

const (
	ImportFunctions ImportCategory = "functions"
	ImportMacros    ImportCategory = "macros"
	ImportSigils    ImportCategory = "sigils"
)

// ImportDirective is an import declaration.
type ImportDirective struct {
	Module []string `json:"module"`

	// Only lists explicitly imported functions; mutually exclusive with
	// OnlyCategory.
	Only         []FunctionRef  `json:"only,omitempty"`
	OnlyCategory ImportCategory `json:"only_category,omitempty"`
	Except       []FunctionRef  `json:"except,omitempty"`
	Location     *Location      `json:"location,omitempty"`
}

// RequireDirective is a require declaration.
type RequireDirective struct {
	Module   []string  `json:"module"`
	As       string    `json:"as,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// OptionValueKind is the native type of a use-option value.
type OptionValueKind string

const (
	OptionAtom    OptionValueKind = "atom"
	OptionInteger OptionValueKind = "integer"
	OptionString  OptionValueKind = "string"
	OptionBoolean OptionValueKind = "boolean"
)

// UseOption is one keyword option passed to a use directive.
type UseOption struct {
	Key   string          `json:"key"`
	Value string          `json:"value"`
	Kind  OptionValueKind `json:"kind"`
}

// UseDirective is a use declaration.
type UseDirective struct {
	Module   []string    `json:"module"`
	Options  []UseOption `json:"options,omitempty"`
	Location *Location   `json:"location,omitempty"`
}

// Activity is an evolution/provenance record: something that happened to
// the code, attributed to an agent.
type ActivityKind string

const (
	ActivityCommit   ActivityKind = "commit"
	ActivityRefactor ActivityKind = "refactor"
	ActivityRename   ActivityKind = "rename"
	ActivityGeneric  ActivityKind = "generic"
)

// Activity describes one evolution activity.
type Activity struct {
	ID        string       `json:"id"`
	Kind      ActivityKind `json:"kind"`
	Label     string       `json:"label,omitempty"`
	Agent     string       `json:"agent,omitempty"`
	CommitSHA string       `json:"commit_sha,omitempty"`
	StartedAt string       `json:"started_at,omitempty"`
	EndedAt   string       `json:"ended_at,omitempty"`

	// Used and Generated are entity IRIs consumed and produced by the
	// activity. Affected are entities it modified in place.
	Used      []string `json:"used,omitempty"`
	Generated []string `json:"generated,omitempty"`
	Affected  []string `json:"affected,omitempty"`
}

// File bundles every record extracted from one source file, as loaded from
// an extraction dump.
type File struct {
	Path    string   `json:"path"`
	Module  []string `json:"module"`

	Functions      []Function          `json:"functions,omitempty"`
	Attributes     []Attribute         `json:"attributes,omitempty"`
	Behaviour      *Behaviour          `json:"behaviour,omitempty"`
	Implementations []Implementation   `json:"implementations,omitempty"`
	Calls          []FunctionCall      `json:"calls,omitempty"`
	AnonymousFns   []AnonymousFunction `json:"anonymous_fns,omitempty"`
	Captures       []Capture           `json:"captures,omitempty"`
	Aliases        []AliasDirective    `json:"aliases,omitempty"`
	Imports        []ImportDirective   `json:"imports,omitempty"`
	Requires       []RequireDirective  `json:"requires,omitempty"`
	Uses           []UseDirective      `json:"uses,omitempty"`
	Macros         []MacroInvocation   `json:"macros,omitempty"`
}
