package builder

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// ErrUnknownExpression is returned when the expression builder meets a node
// shape or operator symbol it does not recognize. The caller decides
// whether to skip the expression or abort; the builder never guesses.
var ErrUnknownExpression = errors.New("builder: unknown expression")

// ExpressionIRI mints the IRI for the expression entity with the given
// counter value under the containing function's fragment.
func ExpressionIRI(baseIRI, callerFragment string, counter int) quad.IRI {
	return entityIRI(baseIRI, "expr", callerFragment, itoa(counter))
}

// operatorClass selects the RDF class for an operator symbol.
func operatorClass(op string) (quad.IRI, bool) {
	switch op {
	case "+", "-", "*", "/", "div", "rem":
		return quad.IRI(structure.ClassArithmeticOperator), true
	case "==", "!=", "===", "!==", "<", ">", "<=", ">=":
		return quad.IRI(structure.ClassComparisonOperator), true
	case "and", "or", "not", "&&", "||", "!":
		return quad.IRI(structure.ClassLogicalOperator), true
	case "<>":
		return quad.IRI(structure.ClassStringConcatOperator), true
	case "in", "not in":
		return quad.IRI(structure.ClassInOperator), true
	case "|>":
		return quad.IRI(structure.ClassPipeOperator), true
	case "=":
		return quad.IRI(structure.ClassMatchOperator), true
	case "&":
		return quad.IRI(structure.ClassCaptureOperator), true
	default:
		return "", false
	}
}

// BuildExpression builds one expression-tree node, recursing into
// operator-shaped operands. Each entity gets a fresh IRI from the context's
// expression counter; the returned context carries the advanced counter and
// must be threaded to the next sibling build; reusing the input context
// mints colliding IRIs.
//
// Plain variable and literal leaves mint no entity: they return a zero IRI,
// no triples, and the context unchanged. Operand edges are emitted only
// toward operands that minted an entity.
func BuildExpression(expr *extract.Expr, ctx *Context) (quad.IRI, []rdf.Triple, *Context, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, ctx, err
	}
	if expr == nil {
		return "", nil, ctx, nil
	}

	switch expr.Kind {
	case extract.ExprVariable, extract.ExprLiteral:
		return "", nil, ctx, nil

	case extract.ExprOperator:
		return buildOperator(expr, ctx)

	case extract.ExprCaptureRef:
		return buildCaptureRef(expr, ctx)

	case extract.ExprCaptureArg:
		return buildCaptureArg(expr, ctx)

	default:
		return "", nil, ctx, fmt.Errorf("%w: node kind %q", ErrUnknownExpression, expr.Kind)
	}
}

func buildOperator(expr *extract.Expr, ctx *Context) (quad.IRI, []rdf.Triple, *Context, error) {
	class, ok := operatorClass(expr.Op)
	if !ok {
		return "", nil, ctx, fmt.Errorf("%w: operator %q", ErrUnknownExpression, expr.Op)
	}

	fragment, _ := ctx.callerFragment()
	n, ctx := ctx.NextExpression()
	iri := ExpressionIRI(ctx.BaseIRI(), fragment, n)

	triples := []rdf.Triple{
		rdf.Type(iri, class),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropOperatorSymbol), expr.Op),
	}

	if expr.Operand != nil {
		operandIRI, operandTriples, next, err := BuildExpression(expr.Operand, ctx)
		if err != nil {
			return "", nil, ctx, err
		}
		ctx = next
		if operandIRI != "" {
			triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropHasOperand), operandIRI))
			triples = append(triples, operandTriples...)
		}
		return iri, rdf.Deduplicate(triples), ctx, nil
	}

	leftIRI, leftTriples, next, err := BuildExpression(expr.Left, ctx)
	if err != nil {
		return "", nil, ctx, err
	}
	ctx = next
	if leftIRI != "" {
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropHasLeftOperand), leftIRI))
		triples = append(triples, leftTriples...)
	}

	rightIRI, rightTriples, next, err := BuildExpression(expr.Right, ctx)
	if err != nil {
		return "", nil, ctx, err
	}
	ctx = next
	if rightIRI != "" {
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropHasRightOperand), rightIRI))
		triples = append(triples, rightTriples...)
	}

	return iri, rdf.Deduplicate(triples), ctx, nil
}

func buildCaptureRef(expr *extract.Expr, ctx *Context) (quad.IRI, []rdf.Triple, *Context, error) {
	if expr.Capture == nil {
		return "", nil, ctx, fmt.Errorf("%w: capture_ref without coordinates", ErrUnknownExpression)
	}

	fragment, _ := ctx.callerFragment()
	n, ctx := ctx.NextExpression()
	iri := ExpressionIRI(ctx.BaseIRI(), fragment, n)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassCaptureOperator)),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropCaptureFunctionName), expr.Capture.Function),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropCaptureArity), expr.Capture.Arity),
	}
	if len(expr.Capture.Module) > 0 {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropCaptureModuleName), JoinModule(expr.Capture.Module)))
	}

	return iri, rdf.Deduplicate(triples), ctx, nil
}

func buildCaptureArg(expr *extract.Expr, ctx *Context) (quad.IRI, []rdf.Triple, *Context, error) {
	fragment, _ := ctx.callerFragment()
	n, ctx := ctx.NextExpression()
	iri := ExpressionIRI(ctx.BaseIRI(), fragment, n)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassCaptureOperator)),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropCaptureIndex), expr.CaptureIndex),
	}

	return iri, rdf.Deduplicate(triples), ctx, nil
}

// BuildExpressions builds a sequence of sibling expression trees, threading
// the counter context from one to the next. Leaves that mint no entity are
// skipped in the IRI list.
func BuildExpressions(exprs []*extract.Expr, ctx *Context) ([]quad.IRI, []rdf.Triple, *Context, error) {
	var iris []quad.IRI
	var all []rdf.Triple
	for _, expr := range exprs {
		iri, triples, next, err := BuildExpression(expr, ctx)
		if err != nil {
			return nil, nil, ctx, err
		}
		ctx = next
		if iri != "" {
			iris = append(iris, iri)
		}
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), ctx, nil
}
