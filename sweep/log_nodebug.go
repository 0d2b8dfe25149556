//go:build !debug

package sweep

// logDebugf is a no-op unless this package is built with -tags debug.
func logDebugf(format string, v ...interface{}) {}
