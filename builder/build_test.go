package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexflow/fusionopt/builder"
)

func intPtr(v int) *int { return &v }

func s1Config() builder.Config {
	return builder.Config{
		Functions: map[string]builder.FunctionSpec{
			"A": {MemoryMB: intPtr(256)},
			"B": {MemoryMB: intPtr(256)},
			"C": {MemoryMB: intPtr(256)},
		},
		ProviderDefaults: builder.ProviderDefaults{TimeoutSeconds: intPtr(1)},
		Topology: map[string]builder.TopologyEntry{
			"A": {Children: map[string]int64{"B": 1 << 30}},
			"B": {Children: map[string]int64{"C": 1 << 30}},
		},
		CriticalPath: []string{"A", "B", "C"},
		Constraints: builder.Constraints{
			MaxMemoryMB:       1024,
			MaxLatencyMS:      310,
			NetworkHopDelayMS: 20,
		},
	}
}

func TestBuild_WiresTopologyAndConstraints(t *testing.T) {
	app, err := builder.Build("s1", s1Config())
	require.NoError(t, err)

	require.Len(t, app.Functions, 3)
	assert.Equal(t, "A", app.RootFunction().ID)
	assert.Equal(t, int64(1024), int64(app.MaxMemoryMB))
	assert.Equal(t, int64(310), app.MaxLatencyMS)
	assert.Equal(t, int64(20), app.NetworkHopDelayMS)

	chain := app.CriticalPathFunctions()
	require.Len(t, chain, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{chain[0].ID, chain[1].ID, chain[2].ID})
}

func TestBuild_AppliesConstraintDefaultsWhenOmitted(t *testing.T) {
	cfg := s1Config()
	cfg.Constraints = builder.Constraints{}

	app, err := builder.Build("defaults", cfg)
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultMaxMemoryMB, app.MaxMemoryMB)
	assert.Equal(t, int64(builder.DefaultMaxLatencyMS), app.MaxLatencyMS)
	assert.Equal(t, int64(builder.DefaultNetworkHopDelayMS), app.NetworkHopDelayMS)
}

func TestBuild_FallsBackThroughProviderDefaultsToPlatformDefault(t *testing.T) {
	cfg := builder.Config{
		Functions: map[string]builder.FunctionSpec{
			"solo": {},
		},
	}

	app, err := builder.Build("fallback", cfg)
	require.NoError(t, err)
	require.Len(t, app.Functions, 1)
	f := app.Functions[0]
	assert.Equal(t, 128, f.MemoryMB)
	assert.Equal(t, int64(3000), f.BaselineRuntimeMS)
}

func TestBuild_ErrorsOnEmptyFunctions(t *testing.T) {
	_, err := builder.Build("empty", builder.Config{})
	require.ErrorIs(t, err, builder.ErrNoFunctionsConfigured)
}

func TestBuild_ErrorsOnUnknownTopologyChild(t *testing.T) {
	cfg := builder.Config{
		Functions: map[string]builder.FunctionSpec{"A": {}},
		Topology: map[string]builder.TopologyEntry{
			"A": {Children: map[string]int64{"ghost": 10}},
		},
	}
	_, err := builder.Build("bad", cfg)
	require.ErrorIs(t, err, builder.ErrUnknownTopologyChild)
}

func TestBuild_DecodeYAMLRoundTrips(t *testing.T) {
	yamlSrc := []byte(`
functions:
  A:
    memory_mb: 256
    timeout_seconds: 1
  B:
    memory_mb: 256
topology:
  A:
    children:
      B: 1073741824
critical_path: [A, B]
constraints:
  max_memory_mb: 1024
  max_latency_ms: 500
  network_hop_delay_ms: 10
`)
	cfg, err := builder.DecodeYAML(yamlSrc)
	require.NoError(t, err)

	app, err := builder.Build("from-yaml", cfg)
	require.NoError(t, err)
	assert.Len(t, app.Functions, 2)
	assert.Equal(t, int64(500), app.MaxLatencyMS)
}
