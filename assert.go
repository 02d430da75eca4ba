//go:build !vectordebug

package vector

// debugAssertions enables precondition checks on the unchecked access paths.
// Build with -tags vectordebug to turn them on.
const debugAssertions = false
