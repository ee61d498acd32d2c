// Package app wires the application together: it owns the configuration,
// the logger, the step registry, and the lifecycle of a discovery run.
package app
