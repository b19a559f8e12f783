// Package monitoring holds the diagnostic logger shared by the analytics and
// ingestion code. Diagnostics never stop processing; they only report.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// may be replaced with SetLogger so tests can capture or mute diagnostics.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Warnf reports a warning-level diagnostic through Logf.
func Warnf(format string, v ...interface{}) {
	Logf("[warn] "+format, v...)
}
