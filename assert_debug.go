//go:build vectordebug

package vector

const debugAssertions = true
