package builder

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
)

// BuildFile builds every record extracted from one source file, bottom-up:
// the module entity, functions with their clauses, attributes, behaviour
// and implementation links, call edges, anonymous functions with the
// closure pass, captures, dependency directives, and macro invocations.
// Returns the module IRI (empty for scripts without a module) and the
// deduplicated triple stream.
func BuildFile(file extract.File, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}

	ctx = ctx.WithFilePath(file.Path)
	if len(file.Module) > 0 {
		ctx = ctx.WithModule(file.Module...)
	}

	var all []rdf.Triple
	var moduleIRI quad.IRI

	if len(file.Module) > 0 {
		iri, triples, err := BuildModule(ctx)
		if err != nil {
			return "", nil, err
		}
		moduleIRI = iri
		all = append(all, triples...)
	}

	fnIRIs, fnTriples, err := BuildFunctions(file.Functions, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, fnTriples...)
	for i, fn := range file.Functions {
		_, clauseTriples, err := BuildClauses(fn.Clauses, fnIRIs[i], ctx)
		if err != nil {
			return "", nil, err
		}
		all = append(all, clauseTriples...)

		if fn.Body != nil {
			bodyTriples, err := buildFunctionBody(fn.Body, fnIRIs[i], ctx)
			if err != nil {
				return "", nil, err
			}
			all = append(all, bodyTriples...)
		}
	}

	_, attrTriples, err := BuildAttributes(file.Attributes, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, attrTriples...)

	if file.Behaviour != nil {
		_, behaviourTriples, err := BuildBehaviour(*file.Behaviour, ctx)
		if err != nil {
			return "", nil, err
		}
		all = append(all, behaviourTriples...)
	}

	for _, impl := range file.Implementations {
		_, implTriples, err := BuildImplementation(impl, ctx)
		if err != nil {
			return "", nil, err
		}
		all = append(all, implTriples...)
	}

	_, callTriples, err := BuildCalls(file.Calls, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, callTriples...)

	_, anonTriples, err := BuildAnonymousFunctions(file.AnonymousFns, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, anonTriples...)

	_, capTriples, err := BuildFunctionCaptures(file.Captures, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, capTriples...)

	_, aliasTriples, err := BuildAliases(file.Aliases, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, aliasTriples...)

	_, importTriples, err := BuildImports(file.Imports, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, importTriples...)

	_, requireTriples, err := BuildRequires(file.Requires, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, requireTriples...)

	_, useTriples, err := BuildUses(file.Uses, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, useTriples...)

	_, macroTriples, err := BuildMacroInvocations(file.Macros, ctx)
	if err != nil {
		return "", nil, err
	}
	all = append(all, macroTriples...)

	return moduleIRI, rdf.Deduplicate(all), nil
}

// buildFunctionBody builds the control-flow, exception, and expression
// records of one function under that function's IRI-local path.
func buildFunctionBody(body *extract.FunctionBody, functionIRI quad.IRI, ctx *Context) ([]rdf.Triple, error) {
	fragment := strings.TrimPrefix(string(functionIRI), ctx.BaseIRI())
	bodyCtx := ctx.WithMetadata(map[string]any{MetadataCaller: fragment})

	var all []rdf.Triple

	for i, c := range body.Conditionals {
		_, triples, err := BuildConditional(c, i, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}
	for i, c := range body.Conds {
		_, triples, err := BuildCond(c, i, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}
	for i, c := range body.Cases {
		_, triples, err := BuildCase(c, i, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}
	for i, w := range body.Withs {
		_, triples, err := BuildWith(w, i, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}
	for i, r := range body.Receives {
		_, triples, err := BuildReceive(r, i, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}
	for i, c := range body.Comprehensions {
		_, triples, err := BuildComprehension(c, i, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}
	for i, t := range body.Tries {
		_, triples, err := BuildTry(t, i, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}
	for i, r := range body.Raises {
		_, triples, err := BuildRaise(r, i, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}
	for i, t := range body.Throws {
		_, triples, err := BuildThrow(t, i, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}

	if bodyCtx.FullModeForFile(bodyCtx.FilePath()) {
		_, triples, _, err := BuildExpressions(body.Expressions, bodyCtx)
		if err != nil {
			return nil, err
		}
		all = append(all, triples...)
	}

	return all, nil
}
