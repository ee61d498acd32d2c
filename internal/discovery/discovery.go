// Package discovery derives the set of output-filename suffixes the
// compiled-in step classes and the pipeline configuration files can
// produce.
//
// Discovery never fails: every candidate that cannot contribute is recorded
// in the report's skip list (and warned about once), and the pass carries on
// with the next one. The resulting report is explicit about partiality
// instead of hiding it in log output.
package discovery

import (
	"context"
	"iter"
	"sort"
	"strings"

	"github.com/tapastro/calsuffix/internal/ctxlog"
	"github.com/tapastro/calsuffix/internal/manifest"
	"github.com/tapastro/calsuffix/internal/registry"
	"github.com/tapastro/calsuffix/internal/stepconfig"
	"github.com/tapastro/calsuffix/internal/suffix"
)

// Skip records one candidate that discovery had to pass over.
type Skip struct {
	// ID identifies the candidate: a module identifier, a class name, or a
	// configuration file name.
	ID string

	// Reason is the error that caused the skip.
	Reason string
}

// Report is the outcome of one discovery pass. Found is the aggregated,
// sorted suffix list; Skipped lists everything that could not contribute.
// A report with skips is still a valid result; its Found list is simply a
// lower bound.
type Report struct {
	Found   []string
	Skipped []Skip
}

// Discoverer runs discovery passes against a fixed registry.
type Discoverer struct {
	reg    *registry.Registry
	loader *manifest.Loader
}

// New creates a Discoverer backed by the given registry.
func New(reg *registry.Registry) *Discoverer {
	return &Discoverer{
		reg:    reg,
		loader: manifest.NewLoader(reg),
	}
}

// FindStepClasses drains the module sequence and collects the distinct
// registered classes the loaded modules reference. Classes are compared by
// identity, so a class referenced by several modules appears once. Failed
// modules become skip records.
func (d *Discoverer) FindStepClasses(results iter.Seq[manifest.Result]) (map[*registry.RegisteredStep]struct{}, []Skip) {
	classes := make(map[*registry.RegisteredStep]struct{})
	var skips []Skip
	for res := range results {
		if res.Err != nil {
			skips = append(skips, Skip{ID: res.ID, Reason: res.Err.Error()})
			continue
		}
		for _, bound := range res.Module.Steps {
			classes[bound.Handler] = struct{}{}
		}
	}
	return classes, skips
}

// InstantiateAndNameAll constructs each class with no arguments and collects
// the lowercase declared names. A constructor failure produces one warning
// and one skip record. An instance that reports no name is skipped without a
// warning, unlike a constructor failure. The asymmetry is deliberate and
// covered by tests; keep it when changing this function.
func InstantiateAndNameAll(ctx context.Context, classes map[*registry.RegisteredStep]struct{}) (suffix.Set, []Skip) {
	logger := ctxlog.FromContext(ctx)

	ordered := make([]*registry.RegisteredStep, 0, len(classes))
	for class := range classes {
		ordered = append(ordered, class)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Class < ordered[j].Class })

	names := make(suffix.Set)
	var skips []Skip
	for _, class := range ordered {
		step, err := class.New()
		if err != nil {
			logger.Warn("Cannot instantiate step class.", "class", class.Class, "error", err)
			skips = append(skips, Skip{ID: class.Class, Reason: err.Error()})
			continue
		}
		name := step.Name()
		if name == "" {
			continue
		}
		names.Add(strings.ToLower(name))
	}
	return names, skips
}

// Run performs one full discovery pass: load the step-module manifests under
// packageRoot, name every referenced class, scan configDir for pipeline
// configurations, and aggregate both sources with the correction sets.
func (d *Discoverer) Run(ctx context.Context, packageRoot, configDir string) *Report {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Discovery pass starting.", "package_root", packageRoot, "config_dir", configDir)

	classes, skips := d.FindStepClasses(d.loader.LoadPackageModules(ctx, packageRoot))
	fromSteps, instSkips := InstantiateAndNameAll(ctx, classes)
	skips = append(skips, instSkips...)

	fromConfigs, failures := stepconfig.FindFromConfigs(ctx, d.reg, configDir)
	for _, f := range failures {
		skips = append(skips, Skip{ID: f.File, Reason: f.Err.Error()})
	}

	found := suffix.Aggregate(fromSteps, fromConfigs)
	logger.Debug("Discovery pass finished.",
		"classes", len(classes),
		"from_steps", len(fromSteps),
		"from_configs", len(fromConfigs),
		"found", len(found),
		"skipped", len(skips),
	)
	return &Report{Found: found.Sorted(), Skipped: skips}
}
