// Package response provides response constructors, the typed HTTPError
// taxonomy, and uniform JSON error emission with a guard against
// double-responding.
package response
