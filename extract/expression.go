package extract

// ExprKind discriminates expression-tree node shapes.
type ExprKind string

const (
	// ExprOperator is an operator application with operands.
	ExprOperator ExprKind = "operator"
	// ExprVariable is a bare variable reference.
	ExprVariable ExprKind = "variable"
	// ExprLiteral is a literal value.
	ExprLiteral ExprKind = "literal"
	// ExprCaptureRef is a &Mod.fun/arity capture by reference.
	ExprCaptureRef ExprKind = "capture_ref"
	// ExprCaptureArg is a positional capture argument like &1.
	ExprCaptureArg ExprKind = "capture_arg"
)

// CaptureRef names a function captured by reference.
type CaptureRef struct {
	Module   []string `json:"module,omitempty"`
	Function string   `json:"function"`
	Arity    int      `json:"arity"`
}

// Expr is an AST-shaped expression node. Operator nodes carry an operator
// symbol and one or two operands; leaf nodes carry a variable name, a
// literal value, or capture coordinates.
type Expr struct {
	Kind ExprKind `json:"kind"`

	// Operator fields.
	Op    string `json:"op,omitempty"`
	Left  *Expr  `json:"left,omitempty"`
	Right *Expr  `json:"right,omitempty"`
	// Operand is set for unary operators instead of Left/Right.
	Operand *Expr `json:"operand,omitempty"`

	// Leaf fields.
	Variable string      `json:"variable,omitempty"`
	Literal  any         `json:"literal,omitempty"`
	Capture  *CaptureRef `json:"capture,omitempty"`
	// CaptureIndex is the position for &1-style capture arguments.
	CaptureIndex int `json:"capture_index,omitempty"`
}
