// Package testutil holds helpers shared by the package tests: temporary
// input files, a concurrency-safe output buffer and a writer that fails.
package testutil
