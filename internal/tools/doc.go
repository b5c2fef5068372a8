// Package tools provides the subprocess execution primitive used by the
// conversion pipeline.
//
// Ownership boundary:
// - command execution with captured output streams
package tools
