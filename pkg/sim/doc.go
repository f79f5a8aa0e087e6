// Package sim provides a simulated board: an analog input driven by a
// settable code or a waveform, an analog output and a pixel which record
// what the firmware writes, and a manual clock.
package sim
