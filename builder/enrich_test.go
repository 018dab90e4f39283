package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexflow/fusionopt/builder"
)

// TestEnrich_S6ReducesRuntimeAndMakesSingletonFeasible mirrors S6. s1Config's
// 1s provider timeout builds every function at 1000ms, so the measurements
// put A and C at S1's 100ms and B at 50ms, bringing the chain's total
// runtime to 250 <= 310.
func TestEnrich_S6ReducesRuntimeAndMakesSingletonFeasible(t *testing.T) {
	app, err := builder.Build("s6", s1Config())
	require.NoError(t, err)

	measurements := map[string]builder.Measurement{
		"A": {AvgRuntimeMS: 100, AvgMemoryMB: 256},
		"B": {AvgRuntimeMS: 50, AvgMemoryMB: 256},
		"C": {AvgRuntimeMS: 100, AvgMemoryMB: 256},
	}
	builder.Enrich(app, measurements)

	b := app.FunctionsMap()["B"]
	assert.EqualValues(t, 50, b.BaselineRuntimeMS)
	assert.Equal(t, 256, b.MemoryMB)

	var total int64
	for _, f := range app.CriticalPathFunctions() {
		total += f.RuntimeMS()
	}
	assert.Equal(t, int64(250), total)
}

func TestEnrich_IgnoresUnknownIDsAndPreservesUntouchedFunctions(t *testing.T) {
	app, err := builder.Build("s6", s1Config())
	require.NoError(t, err)
	originalC := *app.FunctionsMap()["C"]

	builder.Enrich(app, map[string]builder.Measurement{"ghost": {AvgRuntimeMS: 1, AvgMemoryMB: 1}})

	c := app.FunctionsMap()["C"]
	assert.Equal(t, originalC.BaselineRuntimeMS, c.BaselineRuntimeMS)
	assert.Equal(t, originalC.MemoryMB, c.MemoryMB)
}

// TestEnrich_IsIdempotent covers P8: enriching twice with the same
// measurements is equivalent to enriching once.
func TestEnrich_IsIdempotent(t *testing.T) {
	app, err := builder.Build("s6", s1Config())
	require.NoError(t, err)
	measurements := map[string]builder.Measurement{"B": {AvgRuntimeMS: 50, AvgMemoryMB: 200}}

	builder.Enrich(app, measurements)
	once := *app.FunctionsMap()["B"]

	builder.Enrich(app, measurements)
	twice := *app.FunctionsMap()["B"]

	assert.Equal(t, once.BaselineRuntimeMS, twice.BaselineRuntimeMS)
	assert.Equal(t, once.MemoryMB, twice.MemoryMB)
}
