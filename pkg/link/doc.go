// Package link provides the byte-oriented duplex channel between the
// host and the board: a real serial port, a websocket carrying the same
// byte stream, or an in-memory pipe.
package link
