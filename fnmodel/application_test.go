package fnmodel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexflow/fusionopt/fnmodel"
)

// chain builds A->B->C with no branching, each 256MB/100ms.
func chain(t *testing.T) (*fnmodel.Function, *fnmodel.Function, *fnmodel.Function) {
	t.Helper()
	a := fnmodel.NewFunction("A", 256, 100)
	b := fnmodel.NewFunction("B", 256, 100)
	c := fnmodel.NewFunction("C", 256, 100)
	a.AddChild(b, 1<<30)
	b.AddChild(c, 1<<30)
	return a, b, c
}

func TestNewApplication_ValidChain(t *testing.T) {
	a, b, c := chain(t)
	app, err := fnmodel.NewApplication("s1", []*fnmodel.Function{a, b, c}, []string{"A", "B", "C"}, 1024, 310, 20)
	require.NoError(t, err)
	assert.Same(t, a, app.RootFunction())
	assert.Equal(t, []*fnmodel.Function{a, b, c}, app.CriticalPathFunctions())
	assert.Len(t, app.FunctionsMap(), 3)
}

func TestNewApplication_EmptyFunctions(t *testing.T) {
	_, err := fnmodel.NewApplication("empty", nil, nil, 1024, 1000, 10)
	assert.ErrorIs(t, err, fnmodel.ErrNoFunctions)
}

func TestNewApplication_DuplicateID(t *testing.T) {
	a := fnmodel.NewFunction("A", 1, 1)
	dup := fnmodel.NewFunction("A", 1, 1)
	_, err := fnmodel.NewApplication("dup", []*fnmodel.Function{a, dup}, nil, 1024, 1000, 10)
	assert.ErrorIs(t, err, fnmodel.ErrDuplicateFunctionID)
}

func TestNewApplication_MultipleRoots(t *testing.T) {
	a := fnmodel.NewFunction("A", 1, 1)
	b := fnmodel.NewFunction("B", 1, 1)
	_, err := fnmodel.NewApplication("tworoots", []*fnmodel.Function{a, b}, nil, 1024, 1000, 10)
	assert.ErrorIs(t, err, fnmodel.ErrMultipleRoots)
}

func TestNewApplication_UnreachableFunction(t *testing.T) {
	a := fnmodel.NewFunction("A", 1, 1)
	b := fnmodel.NewFunction("B", 1, 1)
	orphan := fnmodel.NewFunction("orphan", 1, 1)
	orphan.Parent = a // lies about having a parent without being in a.Children
	_, err := fnmodel.NewApplication("orphaned", []*fnmodel.Function{a, b, orphan}, nil, 1024, 1000, 10)
	assert.True(t, errors.Is(err, fnmodel.ErrMultipleRoots) || errors.Is(err, fnmodel.ErrUnreachableFunction))
}

func TestNewApplication_UnknownCriticalPathID(t *testing.T) {
	a, b, _ := chain(t)
	_, err := fnmodel.NewApplication("badcp", []*fnmodel.Function{a, b}, []string{"A", "nope"}, 1024, 1000, 10)
	assert.ErrorIs(t, err, fnmodel.ErrUnknownCriticalPathID)
}

func TestNewApplication_CriticalPathNotAChain(t *testing.T) {
	a := fnmodel.NewFunction("A", 1, 1)
	b := fnmodel.NewFunction("B", 1, 1)
	c := fnmodel.NewFunction("C", 1, 1)
	a.AddChild(b, 0)
	a.AddChild(c, 0)
	// B and C are siblings, not connected to each other.
	_, err := fnmodel.NewApplication("siblingcp", []*fnmodel.Function{a, b, c}, []string{"B", "C"}, 1024, 1000, 10)
	assert.ErrorIs(t, err, fnmodel.ErrCriticalPathNotChain)
}
