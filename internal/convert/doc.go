// Package convert runs the external AJT to JT converter tool against
// per-attempt temp files.
//
// Ownership boundary:
// - argument validation and user-visible validation messages
// - temp file allocation and unconditional cleanup
// - stderr-based failure detection for the converter tool
package convert
