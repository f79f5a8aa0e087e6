// Package msgs provides the L1 protocol envelope and the message schemas
// of the trinket bridge.
package msgs

// L1 protocol is communicated between the bridge and L2 programs. Every
// message travels in a Typed envelope carrying its type ID and, for
// commands and their replies, a sequence number.
//
// Producer: trinket bridge
// Consumer: L2 programs
