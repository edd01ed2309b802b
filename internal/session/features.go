// Package session holds the per-build state consulted by front-end passes:
// which experimental features are enabled, whether the staged-stability
// protocol is active, and debug escapes. A *Session is injected into every
// pass that needs it; there is no ambient global.
package session

// Feature is the name of an experimental capability that must be opted into
// via the `features` list in lyra.yaml.
type Feature string

const (
	// FeatureConstFor permits `for` iteration (and its lowered dispatch)
	// inside compile-time-evaluated regions.
	FeatureConstFor Feature = "const_for"

	// FeatureConstTry permits the `?` propagation operator inside
	// compile-time-evaluated regions.
	FeatureConstTry Feature = "const_try"

	// FeatureConstTraitImpl permits `const impl` blocks and const default
	// bodies in trait declarations.
	FeatureConstTraitImpl Feature = "const_trait_impl"
)

// knownFeatures is the registry of recognized feature names. Config loading
// rejects anything not listed here.
var knownFeatures = map[Feature]bool{
	FeatureConstFor:       true,
	FeatureConstTry:       true,
	FeatureConstTraitImpl: true,
}

// KnownFeature reports whether name is a recognized experimental capability.
func KnownFeature(name Feature) bool {
	return knownFeatures[name]
}
