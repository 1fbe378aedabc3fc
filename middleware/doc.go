// Package middleware provides net/http middleware shared across
// routes, currently the fixed base response header set.
package middleware
