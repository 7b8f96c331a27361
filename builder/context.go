package builder

import (
	"errors"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cayleygraph/quad"
)

// Sentinel errors for context construction and use.
var (
	// ErrMissingBaseIRI is returned when a Context is created or validated
	// without a base IRI.
	ErrMissingBaseIRI = errors.New("builder: base IRI is required")

	// ErrInvalidContext is returned by Validate for a nil context.
	ErrInvalidContext = errors.New("builder: invalid context")

	// ErrNoModuleContext is returned when a builder that requires an
	// enclosing module is called without one. This is a caller bug, not a
	// recoverable condition.
	ErrNoModuleContext = errors.New("builder: no module context")
)

// Config keys understood by the Context.
const (
	// ConfigIncludeExpressions enables expression-level triple generation.
	ConfigIncludeExpressions = "include_expressions"

	// ConfigDependencyRoots holds glob patterns naming third-party roots.
	// Files under these roots never get expression-level detail.
	ConfigDependencyRoots = "dependency_roots"
)

// MetadataCaller is the metadata key carrying the IRI-local path of the
// containing function (e.g. "MyApp/handle_call/3") for call and
// control-flow builders.
const MetadataCaller = "caller"

// defaultDependencyRoots are the roots treated as third-party code.
var defaultDependencyRoots = []string{"deps/**", "_build/**", "node_modules/**"}

// Context is the immutable naming and configuration bundle threaded through
// every build call. All With methods return a derived copy; a Context is
// never mutated after construction, so independent builds may share one
// freely across goroutines.
type Context struct {
	baseIRI      string
	filePath     string
	parentModule quad.IRI
	module       []string
	metadata     map[string]any
	config       map[string]any
	exprCounter  int
}

// NewContext creates a Context rooted at baseIRI. An empty baseIRI is a
// construction error.
func NewContext(baseIRI string) (*Context, error) {
	if baseIRI == "" {
		return nil, ErrMissingBaseIRI
	}
	return &Context{baseIRI: baseIRI}, nil
}

// clone returns a shallow copy with fresh map headers so that derived
// contexts never alias the original's metadata or config.
func (c *Context) clone() *Context {
	out := *c
	if c.metadata != nil {
		out.metadata = make(map[string]any, len(c.metadata))
		for k, v := range c.metadata {
			out.metadata[k] = v
		}
	}
	if c.config != nil {
		out.config = make(map[string]any, len(c.config))
		for k, v := range c.config {
			out.config[k] = v
		}
	}
	return &out
}

// BaseIRI returns the base IRI under which all entity IRIs are minted.
func (c *Context) BaseIRI() string { return c.baseIRI }

// FilePath returns the current source file path, or empty.
func (c *Context) FilePath() string { return c.filePath }

// Module returns the enclosing module path segments, or nil.
func (c *Context) Module() []string { return c.module }

// ParentModule returns the parent module IRI, or empty.
func (c *Context) ParentModule() quad.IRI { return c.parentModule }

// WithFilePath returns a copy with the file path replaced.
func (c *Context) WithFilePath(path string) *Context {
	out := c.clone()
	out.filePath = path
	return out
}

// WithModule returns a copy with the enclosing module path replaced.
func (c *Context) WithModule(segments ...string) *Context {
	out := c.clone()
	out.module = append([]string(nil), segments...)
	return out
}

// WithParentModule returns a copy with the parent module IRI replaced.
func (c *Context) WithParentModule(iri quad.IRI) *Context {
	out := c.clone()
	out.parentModule = iri
	return out
}

// WithMetadata returns a copy with m shallow-merged into the metadata;
// new keys win on conflict.
func (c *Context) WithMetadata(m map[string]any) *Context {
	out := c.clone()
	if out.metadata == nil {
		out.metadata = make(map[string]any, len(m))
	}
	for k, v := range m {
		out.metadata[k] = v
	}
	return out
}

// WithConfig returns a copy with m shallow-merged into the config;
// new keys win on conflict.
func (c *Context) WithConfig(m map[string]any) *Context {
	out := c.clone()
	if out.config == nil {
		out.config = make(map[string]any, len(m))
	}
	for k, v := range m {
		out.config[k] = v
	}
	return out
}

// GetMetadata looks up a metadata value, falling back to def.
func (c *Context) GetMetadata(key string, def any) any {
	if v, ok := c.metadata[key]; ok {
		return v
	}
	return def
}

// GetConfig looks up a config value, falling back to def.
func (c *Context) GetConfig(key string, def any) any {
	if v, ok := c.config[key]; ok {
		return v
	}
	return def
}

// Validate re-checks the context before building. A nil context yields
// ErrInvalidContext; a context without a base IRI yields ErrMissingBaseIRI.
func (c *Context) Validate() error {
	if c == nil {
		return ErrInvalidContext
	}
	if c.baseIRI == "" {
		return ErrMissingBaseIRI
	}
	return nil
}

// FullMode reports whether expression-level triples are enabled.
func (c *Context) FullMode() bool {
	v, ok := c.config[ConfigIncludeExpressions]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// LightMode is the negation of FullMode.
func (c *Context) LightMode() bool { return !c.FullMode() }

// FullModeForFile reports whether path gets expression-level detail:
// full mode must be on, the path must be known, and it must not fall under
// a dependency root.
func (c *Context) FullModeForFile(path string) bool {
	if !c.FullMode() || path == "" {
		return false
	}
	for _, pattern := range c.dependencyRoots() {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return false
		}
	}
	return true
}

func (c *Context) dependencyRoots() []string {
	v, ok := c.config[ConfigDependencyRoots]
	if !ok {
		return defaultDependencyRoots
	}
	roots, ok := v.([]string)
	if !ok {
		return defaultDependencyRoots
	}
	return roots
}

// NextExpression allocates the next expression index and returns the
// context to thread to subsequent sibling builds. Reusing the receiver
// after calling NextExpression mints colliding IRIs; always continue with
// the returned context.
func (c *Context) NextExpression() (int, *Context) {
	out := c.clone()
	n := out.exprCounter
	out.exprCounter++
	return n, out
}

// callerFragment returns the IRI-local path of the containing function,
// defaulting to unknown/0 when the caller did not supply one.
func (c *Context) callerFragment() (string, bool) {
	v, ok := c.metadata[MetadataCaller]
	if !ok {
		return "unknown/0", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "unknown/0", false
	}
	return s, true
}

// namePath resolves the hierarchical naming prefix for entity IRIs:
// the dotted module path when known, the parent module's IRI-local
// fragment otherwise, and a file/<path> segment as a last resort.
func (c *Context) namePath() (string, bool) {
	if len(c.module) > 0 {
		return strings.Join(c.module, "."), true
	}
	if c.parentModule != "" {
		return strings.TrimPrefix(string(c.parentModule), c.baseIRI), true
	}
	if c.filePath != "" {
		return "file/" + c.filePath, true
	}
	return "", false
}

// modulePath resolves the naming prefix without the file fallback, for
// builders that require a real module context.
func (c *Context) modulePath() (string, bool) {
	if len(c.module) > 0 {
		return strings.Join(c.module, "."), true
	}
	if c.parentModule != "" {
		return strings.TrimPrefix(string(c.parentModule), c.baseIRI), true
	}
	return "", false
}

// ModuleIRI returns the IRI of the enclosing module, when resolvable.
func (c *Context) ModuleIRI() (quad.IRI, bool) {
	path, ok := c.modulePath()
	if !ok {
		return "", false
	}
	return quad.IRI(c.baseIRI + path), true
}
