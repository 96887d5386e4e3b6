//go:build !debug

package voronoi

// logDebugf is a no-op in non-debug builds; see log_debug.go for the
// -tags debug variant that actually writes to stderr.
func logDebugf(format string, v ...interface{}) {}
