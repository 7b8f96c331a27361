package builder

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// ControlFlowIRI mints the IRI for a control-flow construct: the kind
// segment (if, unless, cond, case, with, receive, for), the containing
// function's fragment, and a 0-indexed position.
func ControlFlowIRI(baseIRI, kind, callerFragment string, index int) quad.IRI {
	return entityIRI(baseIRI, kind, callerFragment, itoa(index))
}

// marker appends a presence-gated boolean marker: literal true when the
// structural feature is present, no triple at all otherwise.
func marker(triples []rdf.Triple, subject quad.Value, predicate string, present bool) []rdf.Triple {
	if !present {
		return triples
	}
	return append(triples, rdf.DatatypeProperty(subject, quad.IRI(predicate), true))
}

// controlFlowBase emits the type triple and the belongsTo edge shared by
// every control-flow builder.
func controlFlowBase(iri quad.IRI, class quad.IRI, ctx *Context) []rdf.Triple {
	triples := []rdf.Triple{rdf.Type(iri, class)}
	if fragment, ok := ctx.callerFragment(); ok {
		callerIRI := quad.IRI(ctx.BaseIRI() + fragment)
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), callerIRI))
	}
	return triples
}

// BuildConditional emits the triples for an if or unless expression at the
// given 0-indexed position. The branch markers follow the presence-gated
// pattern: present features emit true, absent features emit nothing.
func BuildConditional(cond extract.Conditional, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, _ := ctx.callerFragment()
	iri := ControlFlowIRI(ctx.BaseIRI(), string(cond.Kind), fragment, index)

	triples := controlFlowBase(iri, quad.IRI(structure.ClassConditional), ctx)
	triples = marker(triples, iri, structure.PropHasCondition, cond.HasCondition)
	triples = marker(triples, iri, structure.PropHasThenBranch, cond.HasThenBranch)
	triples = marker(triples, iri, structure.PropHasElseBranch, cond.HasElseBranch)
	triples = append(triples, locationTriples(iri, cond.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildCond emits the triples for a cond expression.
func BuildCond(cond extract.CondExpression, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, _ := ctx.callerFragment()
	iri := ControlFlowIRI(ctx.BaseIRI(), "cond", fragment, index)

	anyCondition := false
	for _, c := range cond.Clauses {
		if c.HasCondition {
			anyCondition = true
		}
	}

	triples := controlFlowBase(iri, quad.IRI(structure.ClassCondExpression), ctx)
	triples = marker(triples, iri, structure.PropHasClause, len(cond.Clauses) > 0)
	triples = marker(triples, iri, structure.PropHasCondition, anyCondition)
	triples = append(triples, locationTriples(iri, cond.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildCase emits the triples for a case expression.
func BuildCase(c extract.CaseExpression, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, _ := ctx.callerFragment()
	iri := ControlFlowIRI(ctx.BaseIRI(), "case", fragment, index)

	triples := controlFlowBase(iri, quad.IRI(structure.ClassCaseExpression), ctx)
	triples = marker(triples, iri, structure.PropHasClause, len(c.Clauses) > 0)
	triples = marker(triples, iri, structure.PropHasGuard, anyGuard(c.Clauses))
	triples = append(triples, locationTriples(iri, c.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildWith emits the triples for a with expression.
func BuildWith(w extract.WithExpression, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, _ := ctx.callerFragment()
	iri := ControlFlowIRI(ctx.BaseIRI(), "with", fragment, index)

	anyClauseGuard := false
	for _, c := range w.Clauses {
		if c.HasGuard {
			anyClauseGuard = true
		}
	}

	triples := controlFlowBase(iri, quad.IRI(structure.ClassWithExpression), ctx)
	triples = marker(triples, iri, structure.PropHasClause, len(w.Clauses) > 0)
	triples = marker(triples, iri, structure.PropHasGuard, anyClauseGuard)
	triples = marker(triples, iri, structure.PropHasElseClause, w.HasElseClause)
	triples = append(triples, locationTriples(iri, w.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildReceive emits the triples for a receive expression.
func BuildReceive(r extract.ReceiveExpression, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, _ := ctx.callerFragment()
	iri := ControlFlowIRI(ctx.BaseIRI(), "receive", fragment, index)

	triples := controlFlowBase(iri, quad.IRI(structure.ClassReceiveExpression), ctx)
	triples = marker(triples, iri, structure.PropHasClause, len(r.Clauses) > 0)
	triples = marker(triples, iri, structure.PropHasGuard, anyGuard(r.Clauses))
	triples = marker(triples, iri, structure.PropHasAfterTimeout, r.HasAfterTimeout)
	triples = append(triples, locationTriples(iri, r.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildComprehension emits the triples for a for comprehension. The option
// markers are presence-gated; isAccumulating is an explicit flag emitted
// with true or false on every comprehension.
func BuildComprehension(c extract.Comprehension, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	fragment, _ := ctx.callerFragment()
	iri := ControlFlowIRI(ctx.BaseIRI(), "for", fragment, index)

	triples := controlFlowBase(iri, quad.IRI(structure.ClassComprehension), ctx)
	triples = marker(triples, iri, structure.PropHasGenerator, c.GeneratorCount > 0)
	triples = marker(triples, iri, structure.PropHasFilter, c.FilterCount > 0)
	triples = marker(triples, iri, structure.PropHasIntoOption, c.HasIntoOption)
	triples = marker(triples, iri, structure.PropHasReduceOption, c.HasReduceOption)
	triples = marker(triples, iri, structure.PropHasUniqOption, c.HasUniqOption)

	// A :reduce comprehension folds into an accumulator instead of
	// collecting results.
	triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropIsAccumulating), c.HasReduceOption))

	triples = append(triples, locationTriples(iri, c.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

func anyGuard(clauses []extract.CaseClause) bool {
	for _, c := range clauses {
		if c.HasGuard {
			return true
		}
	}
	return false
}
