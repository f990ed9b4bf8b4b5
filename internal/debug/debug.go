// Package debug holds assertions that are only compiled in for debug builds.
//
// Build with -tags memcanvasdebug to turn contract violations (out of range
// pixel access, double allocation, mismatched pixel formats) into panics.
// Release builds drop the checks and the drawing code silently clips instead.
package debug

// Assert panics with msg when cond is false and assertions are enabled.
func Assert(cond bool, msg string) {
	if Enabled && !cond {
		panic("memcanvas: assertion failed: " + msg)
	}
}
