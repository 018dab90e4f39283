// Package builder implements the Builder (C11): it constructs a validated
// fnmodel.Application from a structured Config (§6's nested configuration
// record) and enriches an existing Application with live metric
// observations.
//
// Grounded on the teacher's builder package's sentinel-error /
// deterministic-construction style — sentinel errors returned (never
// panicked) from the build path, map keys sorted before use — generalized
// here from graph-topology fixture generation to constructing one
// fusion-optimizer Application. This package has no functional options:
// Build takes a plain Config value.
package builder
