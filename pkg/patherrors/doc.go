// Package patherrors provides error definitions for path validity reporting.
//
// This package defines standardized error types to ensure consistent error
// reporting and wrapping throughout the codebase. Validity is a reportable
// property of a path, never a parse failure, so every error here is a
// sentinel meant to be wrapped with context and aggregated.
package patherrors
