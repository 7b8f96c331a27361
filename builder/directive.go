package builder

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// DirectiveIRI mints the IRI for a dependency directive: the declaring
// module, the directive kind segment (alias, import, require, use), and a
// 0-indexed position.
func DirectiveIRI(baseIRI, modulePath, kind string, index int) quad.IRI {
	return entityIRI(baseIRI, modulePath, kind, itoa(index))
}

// UseOptionIRI mints the IRI for one keyword option of a use directive.
func UseOptionIRI(useIRI quad.IRI, key string) quad.IRI {
	return quad.IRI(string(useIRI) + "/option/" + EscapeLocalName(key))
}

// aliasDefaultName is the name an alias binds when no :as is given: the
// last segment of the aliased module path.
func aliasDefaultName(module []string) string {
	if len(module) == 0 {
		return ""
	}
	return module[len(module)-1]
}

// BuildAlias emits the triples for an alias declaration at the given
// 0-indexed position.
func BuildAlias(a extract.AliasDirective, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	modPath, ok := ctx.modulePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: alias %s", ErrNoModuleContext, JoinModule(a.Module))
	}

	iri := DirectiveIRI(ctx.BaseIRI(), modPath, "alias", index)
	moduleIRI := quad.IRI(ctx.BaseIRI() + modPath)

	name := a.As
	if name == "" {
		name = aliasDefaultName(a.Module)
	}

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassAlias)),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropAliasModule), ModuleIRI(ctx.BaseIRI(), a.Module)),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), moduleIRI),
	}
	if name != "" {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropAliasName), name))
	}

	triples = append(triples, locationTriples(iri, a.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildAliases builds every alias in input order with sequential 0-based
// indices.
func BuildAliases(aliases []extract.AliasDirective, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(aliases))
	var all []rdf.Triple
	for i, a := range aliases {
		iri, triples, err := BuildAlias(a, i, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}

// BuildRequire emits the triples for a require declaration at the given
// 0-indexed position.
func BuildRequire(r extract.RequireDirective, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	modPath, ok := ctx.modulePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: require %s", ErrNoModuleContext, JoinModule(r.Module))
	}

	iri := DirectiveIRI(ctx.BaseIRI(), modPath, "require", index)
	moduleIRI := quad.IRI(ctx.BaseIRI() + modPath)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassRequire)),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropRequireModule), ModuleIRI(ctx.BaseIRI(), r.Module)),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), moduleIRI),
	}
	if r.As != "" {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropAliasName), r.As))
	}

	triples = append(triples, locationTriples(iri, r.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildRequires builds every require in input order.
func BuildRequires(requires []extract.RequireDirective, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(requires))
	var all []rdf.Triple
	for i, r := range requires {
		iri, triples, err := BuildRequire(r, i, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}

// BuildImport emits the triples for an import declaration at the given
// 0-indexed position. isFullImport is an explicit flag: true only when the
// import carries no only/except restriction of any kind. An only list of
// name/arity pairs emits one importsFunction edge per pair; an only
// category (:functions, :macros, :sigils) emits a single importType
// literal; an except list emits excludesFunction edges.
func BuildImport(imp extract.ImportDirective, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	modPath, ok := ctx.modulePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: import %s", ErrNoModuleContext, JoinModule(imp.Module))
	}

	iri := DirectiveIRI(ctx.BaseIRI(), modPath, "import", index)
	moduleIRI := quad.IRI(ctx.BaseIRI() + modPath)
	isFull := len(imp.Only) == 0 && imp.OnlyCategory == "" && len(imp.Except) == 0

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassImport)),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropImportModule), ModuleIRI(ctx.BaseIRI(), imp.Module)),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), moduleIRI),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropIsFullImport), isFull),
	}

	for _, fn := range imp.Only {
		target := FunctionIRI(ctx.BaseIRI(), imp.Module, fn.Name, fn.Arity)
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropImportsFunction), target))
	}
	if imp.OnlyCategory != "" {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropImportType), string(imp.OnlyCategory)))
	}
	for _, fn := range imp.Except {
		target := FunctionIRI(ctx.BaseIRI(), imp.Module, fn.Name, fn.Arity)
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropExcludesFunction), target))
	}

	triples = append(triples, locationTriples(iri, imp.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildImports builds every import in input order.
func BuildImports(imports []extract.ImportDirective, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(imports))
	var all []rdf.Triple
	for i, imp := range imports {
		iri, triples, err := BuildImport(imp, i, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}

// BuildUse emits the triples for a use declaration at the given 0-indexed
// position: three base triples plus one option sub-entity with six triples
// per keyword option. Option values in extraction records are always
// literals, so isDynamicOption is false throughout; runtime-evaluated
// option expressions are not modeled.
func BuildUse(u extract.UseDirective, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	modPath, ok := ctx.modulePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: use %s", ErrNoModuleContext, JoinModule(u.Module))
	}

	iri := DirectiveIRI(ctx.BaseIRI(), modPath, "use", index)
	moduleIRI := quad.IRI(ctx.BaseIRI() + modPath)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassUse)),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropUseModule), ModuleIRI(ctx.BaseIRI(), u.Module)),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), moduleIRI),
	}

	for _, opt := range u.Options {
		optIRI := UseOptionIRI(iri, opt.Key)
		triples = append(triples,
			rdf.ObjectProperty(iri, quad.IRI(structure.PropHasOption), optIRI),
			rdf.Type(optIRI, quad.IRI(structure.ClassUseOption)),
			rdf.DatatypeProperty(optIRI, quad.IRI(structure.PropOptionKey), opt.Key),
			rdf.DatatypeProperty(optIRI, quad.IRI(structure.PropOptionValue), opt.Value),
			rdf.DatatypeProperty(optIRI, quad.IRI(structure.PropOptionValueType), string(opt.Kind)),
			rdf.DatatypeProperty(optIRI, quad.IRI(structure.PropIsDynamicOption), false),
		)
	}

	triples = append(triples, locationTriples(iri, u.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildUses builds every use in input order.
func BuildUses(uses []extract.UseDirective, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(uses))
	var all []rdf.Triple
	for i, u := range uses {
		iri, triples, err := BuildUse(u, i, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}
