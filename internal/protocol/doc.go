// Package protocol owns the bridge wire contract.
//
// Ownership boundary:
// - JSON request decoding (inbound text frames)
// - binary response framing (outbound binary frames)
package protocol
