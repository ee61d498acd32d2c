// Package registry provides the central "glue" for the step system.
//
// The Registry stores mappings between the class names used in manifests and
// pipeline configuration files (e.g., "DarkCurrentStep") and the compiled Go
// constructors that implement those steps. Step packages register themselves
// explicitly at startup; nothing is discovered by reflection.
//
// Discovery consults the registry to resolve every class reference it finds
// on disk, so a manifest naming an unregistered class is detectable at load
// time rather than surfacing as a runtime error later.
package registry
