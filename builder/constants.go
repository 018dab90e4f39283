package builder

// Provider-default fallbacks applied when both a function's own entry and
// Config.ProviderDefaults omit the field — grounded on common serverless
// platform defaults (AWS Lambda's 128 MB / 3 s).
const (
	fallbackMemoryMB       = 128
	fallbackTimeoutSeconds = 3
)

// Constraint defaults per §6: applied when Config.Constraints omits a field
// (a zero value in the decoded struct is indistinguishable from "omitted"
// for these always-positive fields, so zero also resolves to the default).
const (
	DefaultMaxMemoryMB       = 1024
	DefaultMaxLatencyMS      = 30000
	DefaultNetworkHopDelayMS = 20
)
