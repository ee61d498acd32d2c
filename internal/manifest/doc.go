// Package manifest loads step-module manifests from a package source tree.
//
// A step module is a directory containing one or more HCL manifest files
// that declare the steps the module provides: the registered class each step
// binds to and its configurable parameters. The
// directory hierarchy mirrors the module hierarchy, so every manifest file
// gets a dotted module identifier derived from its location (for example
// "modules.darkcurrent.manifest").
//
// Loading is best-effort by contract: a manifest that fails to parse,
// decode, or bind contributes nothing except a single warning, and loading
// continues with the next candidate. Callers must treat the produced
// sequence as possibly incomplete.
package manifest
