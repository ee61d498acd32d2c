package manifest

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tapastro/calsuffix/internal/ctxlog"
	"github.com/tapastro/calsuffix/internal/fsutil"
	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/zclconf/go-cty/cty/convert"
)

var (
	// sourceFileRe matches non-private manifest files: base names that do
	// not start with an underscore and carry the manifest extension.
	sourceFileRe = regexp.MustCompile(`^[^_].*\.hcl$`)

	// excludePathRe matches any directory path containing a "tests" segment.
	sep           = regexp.QuoteMeta(string(os.PathSeparator))
	excludePathRe = regexp.MustCompile(`(^|` + sep + `)tests(` + sep + `|$)`)
)

// Module is one successfully loaded manifest file.
type Module struct {
	// ID is the dotted module identifier derived from the file's location
	// relative to the parent of the package root.
	ID string

	// Path is the manifest file's filesystem location.
	Path string

	// Steps holds every step the manifest declares, bound to its
	// registered class.
	Steps []*BoundStep
}

// BoundStep pairs a decoded step declaration with the registered constructor
// its class name resolved to.
type BoundStep struct {
	Def     *StepDef
	Handler *registry.RegisteredStep
}

// Result is one element of the loading sequence: either a loaded Module or
// the error that prevented loading it. ID is always set.
type Result struct {
	ID     string
	Module *Module
	Err    error
}

// Loader loads step-module manifests and binds them against a registry.
type Loader struct {
	reg *registry.Registry
}

// NewLoader creates a manifest loader backed by the given registry.
func NewLoader(reg *registry.Registry) *Loader {
	return &Loader{reg: reg}
}

// LoadPackageModules lazily loads every candidate manifest under packageRoot.
// The package root is an explicit parameter; no process-wide lookup state is
// touched. Candidates are non-private manifest files outside any "tests"
// directory. A candidate that fails to load yields a Result carrying the
// error, after exactly one logged warning, and loading continues.
//
// If something unexpected panics mid-traversal the sequence ends early after
// a single log line. This silent truncation is part of the contract: the
// sequence is best-effort and possibly incomplete.
func (l *Loader) LoadPackageModules(ctx context.Context, packageRoot string) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		logger := ctxlog.FromContext(ctx)
		defer func() {
			if r := recover(); r != nil {
				logger.Warn("Cannot complete package loading.", "package_root", packageRoot, "cause", r)
			}
		}()

		logger.Debug("Loading step modules from package root...", "path", packageRoot)
		parser := hclparse.NewParser()
		packageParent := filepath.Dir(filepath.Clean(packageRoot))

		for path := range fsutil.Traverse(packageRoot, sourceFileRe, excludePathRe) {
			id := moduleID(packageParent, path)
			mod, err := l.loadFile(parser, id, path)
			if err != nil {
				logger.Warn("Cannot load module.", "module", id, "error", err)
				if !yield(Result{ID: id, Err: err}) {
					return
				}
				continue
			}
			logger.Debug("Loaded module.", "module", id, "steps", len(mod.Steps))
			if !yield(Result{ID: id, Module: mod}) {
				return
			}
		}
	}
}

// moduleID derives the dotted module identifier for a manifest file: the
// path relative to the package root's parent, with separators replaced by
// dots and the file extension dropped.
func moduleID(packageParent, path string) string {
	rel, err := filepath.Rel(packageParent, path)
	if err != nil {
		rel = path
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
}

// loadFile parses and decodes one manifest file and binds its declared steps
// to registered classes.
func (l *Loader) loadFile(parser *hclparse.Parser, id, path string) (*Module, error) {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	mod := &Module{ID: id, Path: path}
	for _, def := range root.Steps {
		if err := validateParameters(def); err != nil {
			return nil, fmt.Errorf("step %q: %w", def.Name, err)
		}
		handler, ok := l.reg.Step(def.Class)
		if !ok {
			return nil, fmt.Errorf("step %q references unregistered class %q", def.Name, def.Class)
		}
		mod.Steps = append(mod.Steps, &BoundStep{Def: def, Handler: handler})
	}
	return mod, nil
}

// validateParameters checks each parameter's declared type and, when a
// default is present, that the default is convertible to that type.
func validateParameters(def *StepDef) error {
	for _, p := range def.Parameters {
		declared, err := typeExprToCtyType(p.Type)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		if p.Default == nil {
			continue
		}
		if _, err := convert.Convert(*p.Default, declared); err != nil {
			return fmt.Errorf("parameter %q: default value: %w", p.Name, err)
		}
	}
	return nil
}
