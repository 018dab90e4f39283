package builder

import "github.com/vexflow/fusionopt/fnmodel"

// Measurement is one function's live observation (§6's "Live-metrics input").
type Measurement struct {
	AvgRuntimeMS int64 `yaml:"avg_runtime_ms" json:"avg_runtime_ms"`
	AvgMemoryMB  int   `yaml:"avg_memory_mb" json:"avg_memory_mb"`
}

// Enrich replaces BaselineRuntimeMS and MemoryMB on every function present
// in measurements (matched by id, per SPEC_FULL.md §5 — unlike the Python
// source, which matches by name). Functions absent from measurements keep
// their existing values; ids in measurements absent from app are ignored.
// Applying the same measurements twice is a no-op after the first (P8):
// Enrich only ever writes the same fixed values back.
func Enrich(app *fnmodel.Application, measurements map[string]Measurement) *fnmodel.Application {
	index := app.FunctionsMap()
	for id, m := range measurements {
		f, ok := index[id]
		if !ok {
			continue
		}
		f.BaselineRuntimeMS = m.AvgRuntimeMS
		f.MemoryMB = m.AvgMemoryMB
	}
	return app
}
