// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized mock implementations can be reused across test packages.
// Each mock exposes function fields for per-test customization and falls
// back to simple in-memory defaults when a function is not set.
package mocks
