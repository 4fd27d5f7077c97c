// Package batch runs load calculations for many buildings concurrently,
// with bounded parallelism and progress reporting for CLI and TUI consumers.
package batch
