package platform_test

import (
	"testing"

	"github.com/go-drift/fastscroll/pkg/platform"
)

func TestFeatureLevel_SupportsNestedScroll(t *testing.T) {
	if platform.FeatureLevelLegacy.SupportsNestedScroll() {
		t.Error("legacy level must not support nested scroll")
	}
	if !platform.FeatureLevelNestedScroll.SupportsNestedScroll() {
		t.Error("nested-scroll level must support nested scroll")
	}
	if !(platform.FeatureLevelNestedScroll + 5).SupportsNestedScroll() {
		t.Error("newer levels must support nested scroll")
	}
}

func TestHostFeatureLevel_Default(t *testing.T) {
	if !platform.HostFeatureLevel().SupportsNestedScroll() {
		t.Error("default host level must support nested scroll")
	}
}

func TestSetHostFeatureLevel_ReturnsPrevious(t *testing.T) {
	prev := platform.SetHostFeatureLevel(platform.FeatureLevelLegacy)
	defer platform.SetHostFeatureLevel(prev)

	if platform.HostFeatureLevel() != platform.FeatureLevelLegacy {
		t.Error("host level not applied")
	}
}

func TestSetupTestHost_RestoresOnCleanup(t *testing.T) {
	original := platform.HostFeatureLevel()

	var restore func()
	platform.SetupTestHost(func(fn func()) { restore = fn }, platform.FeatureLevelLegacy)
	if platform.HostFeatureLevel() != platform.FeatureLevelLegacy {
		t.Fatal("test host level not applied")
	}

	restore()
	if platform.HostFeatureLevel() != original {
		t.Error("cleanup must restore the original level")
	}
}
