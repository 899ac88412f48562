// 29 Apr 2020

// Package common holds the few constants that the MITAB packages and
// commands all need.
package common

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// NoValue is what MITAB writes in a column that has nothing in it.
const NoValue = "-"

// IsNoValue is true for the "-" marker and for a completely empty field.
func IsNoValue(field string) bool { return field == "" || field == NoValue }
