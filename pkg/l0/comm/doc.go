// Package comm provides L0 protocol support.
package comm

// L0 protocol is communicated between the board firmware and the host
// driver over a byte-oriented serial link. It is plain ASCII, one command
// per line, with no escaping and no acknowledgement.
//
// Host to board: a command line terminated by CR, e.g. "led#FF0000\r".
// Board to host: response lines prefixed by the sentinel '>', followed by
// a one-character type tag and the value, e.g. ">i2048" or ">v1.65000".
//
// The board runtime echoes every received line, so the host sees its own
// commands interleaved with responses. Only sentinel lines carry data,
// everything else is either echo or noise (see Classify).
//
// There is no bit verification (CRC/Checksum). A corrupted line is most
// likely dropped as noise, but it may also be read as a response with a
// garbled value.
//
// Producer: host driver (commands), board firmware (responses)
// Consumer: board firmware (commands), host driver (responses)
