package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/tapastro/calsuffix/internal/ctxlog"
	"github.com/tapastro/calsuffix/internal/discovery"
	"github.com/tapastro/calsuffix/internal/suffix"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	switch {
	case a.config.RemoveName != "":
		root, _ := suffix.RemoveSuffix(a.config.RemoveName)
		fmt.Fprintln(a.outW, root)
	case a.config.ShowKnown:
		for _, s := range suffix.KnownSuffixes {
			fmt.Fprintln(a.outW, s)
		}
	default:
		a.runDiscovery(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runDiscovery performs a full discovery pass and reports drift against the
// committed known list. Discovery never fails; skips are part of the report.
func (a *App) runDiscovery(ctx context.Context) {
	fmt.Fprintln(a.outW, "Searching code base for calibration suffixes...")

	report := discovery.New(a.reg).Run(ctx, a.config.PackagePath, a.config.ConfigPath)

	fmt.Fprintf(a.outW, "Known list has %d suffixes. Found %d suffixes.\n",
		len(suffix.KnownSuffixes), len(report.Found))

	changed := symmetricDifference(suffix.KnownSuffixes, report.Found)
	fmt.Fprintf(a.outW, "Suffixes that have changed are %v\n", changed)

	if len(report.Skipped) > 0 {
		fmt.Fprintf(a.outW, "Skipped %d candidates:\n", len(report.Skipped))
		for _, skip := range report.Skipped {
			fmt.Fprintf(a.outW, "  %s: %s\n", skip.ID, skip.Reason)
		}
	}
}

// symmetricDifference returns the sorted elements present in exactly one of
// the two lists.
func symmetricDifference(a, b []string) []string {
	setA := suffix.NewSet(a...)
	setB := suffix.NewSet(b...)
	var out []string
	for s := range setA {
		if !setB.Has(s) {
			out = append(out, s)
		}
	}
	for s := range setB {
		if !setA.Has(s) {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
