package test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

const (
	BundlesDir    = "./testdata"
	DenverBundle  = "denver-q4-budget"
	DenverFixture = DenverBundle + ".yaml"
)

// Now is the instant memo tests freeze the clock at.
var Now = time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)

// MST renders dates the way the Denver fixture expects them.
var MST = time.FixedZone("MST", -7*60*60)

func GetBundlesDir(t *testing.T) string {
	t.Helper()
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)

	path := filepath.Join(testDir, BundlesDir)
	if _, err := os.Stat(path); err != nil {
		t.Skipf("Bundles not found at %s: %v", path, err)
	}
	return path
}

func GetBundlePath(t *testing.T, file string) string {
	t.Helper()
	return filepath.Join(GetBundlesDir(t), file)
}
