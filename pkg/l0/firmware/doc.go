// Package firmware is the board side of the L0 protocol: it dispatches
// command lines to the LED, ADC and DAC state machines and runs the
// cooperative main loop which either handles one input line or advances
// the peripherals by one idle tick.
package firmware
