package builder

import "errors"

// ErrNoFunctionsConfigured indicates Config.Functions is empty; the source
// YAML/JSON manifest has nothing to build an Application from.
var ErrNoFunctionsConfigured = errors.New("builder: no functions configured")

// ErrUnknownTopologyParent indicates a topology entry's parent id is not a
// configured function.
var ErrUnknownTopologyParent = errors.New("builder: topology references unknown parent id")

// ErrUnknownTopologyChild indicates a topology entry's child id is not a
// configured function.
var ErrUnknownTopologyChild = errors.New("builder: topology references unknown child id")
