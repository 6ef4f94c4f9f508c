// Package platform describes host capabilities that affect scrolling
// behavior. Hosts report a feature level; widgets consult it to decide
// between native nested scrolling and compatibility fallbacks.
package platform

import "sync"

// FeatureLevel identifies the capability generation of the host embedding
// the UI. Higher levels support more native scrolling integration.
type FeatureLevel int

const (
	// FeatureLevelLegacy hosts predate native nested scrolling. Scroll
	// coordination with ancestor containers must go through a
	// compatibility delegate.
	FeatureLevelLegacy FeatureLevel = 19

	// FeatureLevelNestedScroll is the first level with native nested
	// scroll dispatch between a scrolling child and its ancestors.
	FeatureLevelNestedScroll FeatureLevel = 21
)

// SupportsNestedScroll reports whether the level includes native nested
// scroll dispatch.
func (l FeatureLevel) SupportsNestedScroll() bool {
	return l >= FeatureLevelNestedScroll
}

var (
	hostLevel   = FeatureLevelNestedScroll
	hostLevelMu sync.RWMutex
)

// HostFeatureLevel returns the feature level of the current host.
func HostFeatureLevel() FeatureLevel {
	hostLevelMu.RLock()
	defer hostLevelMu.RUnlock()
	return hostLevel
}

// SetHostFeatureLevel overrides the reported host feature level.
// Called by embedders during initialization and by tests to simulate
// legacy hosts. Returns the previous level so callers can restore it.
func SetHostFeatureLevel(level FeatureLevel) FeatureLevel {
	hostLevelMu.Lock()
	defer hostLevelMu.Unlock()
	prev := hostLevel
	hostLevel = level
	return prev
}

// SetupTestHost installs the given feature level for the duration of a
// test. The cleanup function should be testing.T.Cleanup or equivalent.
//
//	platform.SetupTestHost(t.Cleanup, platform.FeatureLevelLegacy)
func SetupTestHost(cleanup func(func()), level FeatureLevel) {
	prev := SetHostFeatureLevel(level)
	cleanup(func() { SetHostFeatureLevel(prev) })
}
