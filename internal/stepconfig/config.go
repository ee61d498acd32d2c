// Package stepconfig builds step instances from pipeline configuration
// files.
//
// A configuration file is a flat HCL document (conventionally with a .cfg
// extension) naming a registered step class plus optional overrides: an
// instance name, an output suffix, and a parameters block. Different names
// and suffixes can be introduced this way than the step classes themselves
// declare, which is why configuration scanning is a separate discovery
// source.
package stepconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tapastro/calsuffix/internal/ctxlog"
	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Extension is the file extension pipeline configuration files carry.
const Extension = ".cfg"

// paramsBlock captures the raw body of a 'parameters' block so its
// attributes can be evaluated individually.
type paramsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// configFile represents the top-level structure of a configuration file.
// Suffix is a pointer so an absent attribute can be told apart from an
// explicitly empty one.
type configFile struct {
	Class      string       `hcl:"class"`
	Name       string       `hcl:"name,optional"`
	Suffix     *string      `hcl:"suffix,optional"`
	Parameters *paramsBlock `hcl:"parameters,block"`
}

// configuredStep wraps a constructed step instance with the overrides its
// configuration file declared.
type configuredStep struct {
	inner  registry.Step
	name   string
	suffix *string
}

// Name returns the configured instance name, falling back to the class's
// own declared name.
func (s *configuredStep) Name() string {
	if s.name != "" {
		return s.name
	}
	return s.inner.Name()
}

// Suffix returns the configured suffix when one was declared. An explicitly
// empty suffix means "none".
func (s *configuredStep) Suffix() (string, bool) {
	if s.suffix != nil {
		return *s.suffix, *s.suffix != ""
	}
	return s.inner.Suffix()
}

// Configure delegates to the wrapped instance.
func (s *configuredStep) Configure(params map[string]cty.Value) error {
	return s.inner.Configure(params)
}

// StepFromConfigFile constructs a step instance from the given configuration
// file: the named class is constructed with no arguments, configured with
// the file's parameters, and wrapped with the file's name/suffix overrides.
func StepFromConfigFile(reg *registry.Registry, path string) (registry.Step, error) {
	hclFile, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, diags)
	}

	var cfg configFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, diags)
	}

	handler, ok := reg.Step(cfg.Class)
	if !ok {
		return nil, fmt.Errorf("config %s references unregistered class %q", path, cfg.Class)
	}

	step, err := handler.New()
	if err != nil {
		return nil, fmt.Errorf("failed to construct %s: %w", cfg.Class, err)
	}

	params, err := evalParameters(cfg.Parameters)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := step.Configure(params); err != nil {
		return nil, fmt.Errorf("failed to configure %s: %w", cfg.Class, err)
	}

	return &configuredStep{inner: step, name: cfg.Name, suffix: cfg.Suffix}, nil
}

// evalParameters evaluates every attribute of the parameters block into a
// concrete cty.Value. Configuration files are static documents, so no
// evaluation context is provided.
func evalParameters(block *paramsBlock) (map[string]cty.Value, error) {
	if block == nil {
		return nil, nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid parameters block: %w", diags)
	}
	params := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parameter %q: %w", name, diags)
		}
		params[name] = val
	}
	return params, nil
}

// Failure records one configuration file that could not produce a step.
type Failure struct {
	File string
	Err  error
}

// FindFromConfigs scans configDir (non-recursively) for configuration files
// and collects the lowercase name of every step successfully constructed
// from one, plus its suffix when present. A file that fails produces exactly
// one warning and one Failure record; scanning always continues. An
// unreadable directory yields an empty result rather than an error.
func FindFromConfigs(ctx context.Context, reg *registry.Registry, configDir string) (map[string]struct{}, []Failure) {
	logger := ctxlog.FromContext(ctx)
	names := make(map[string]struct{})

	entries, err := os.ReadDir(configDir)
	if err != nil {
		logger.Warn("Cannot list configuration directory.", "path", configDir, "error", err)
		return names, []Failure{{File: configDir, Err: err}}
	}

	var failures []Failure
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		path := filepath.Join(configDir, entry.Name())
		step, err := StepFromConfigFile(reg, path)
		if err != nil {
			logger.Warn("Configuration failed.", "file", entry.Name(), "error", err)
			failures = append(failures, Failure{File: entry.Name(), Err: err})
			continue
		}
		names[strings.ToLower(step.Name())] = struct{}{}
		if suffix, ok := step.Suffix(); ok {
			names[strings.ToLower(suffix)] = struct{}{}
		}
	}
	return names, failures
}
