// Package acia implements a Motorola MC6850 Asynchronous Communications
// Interface Adapter, wired up as the sole serial port of the emulated
// machine. It has no buffering beyond a single receive register: the
// keyboard source and terminal sink are expected to keep up with the
// emulated baud rate however they see fit.
//
// https://www.cpcwiki.eu/imgs/3/3f/MC6850.pdf
package acia

import "uk101re/mask"

// bit positions (1-indexed from the MSB, per mask's convention) within SR.
const (
	srRDRF = mask.I8 // bit 0: receive data register full
	srTDRE = mask.I7 // bit 1: transmit data register empty
)

// resetSR is the status register's value immediately after reset: bits 2-3
// (the DCD/CTS lines, unused on the UK101's single ACIA wiring) read high.
const resetSR = 0x0E

// KeyboardSource is the external collaborator that feeds typed bytes to the
// ACIA. Ready and ReadByte are each individually atomic but need not be
// atomic with respect to one another: a false positive from Ready (it
// reported a byte that is no longer there when ReadByte is called) is
// tolerated by ReadByte returning 0 for that read, matching real MC6850
// behavior under a race between the UART and the CPU.
type KeyboardSource interface {
	Ready() bool
	ReadByte() byte
}

// TerminalSink is the external collaborator that receives transmitted bytes.
type TerminalSink interface {
	WriteByte(b byte)
}

// ACIA models the two-register window exposed by the real chip. TDR and CR
// are write-only as observed by the running program (the CPU never reads
// back what it last wrote there); they are kept as named fields purely so
// that tooling such as the debugger can display them.
type ACIA struct {
	TDR byte // last byte written to the transmit register
	RDR byte // last byte pulled from the keyboard source
	CR  byte // last byte written to the control register
	SR  byte // status register

	Keyboard KeyboardSource
	Terminal TerminalSink
}

// New constructs an ACIA wired to the given keyboard source and terminal
// sink, already reset.
func New(kb KeyboardSource, term TerminalSink) *ACIA {
	a := &ACIA{Keyboard: kb, Terminal: term}
	a.Reset()
	return a
}

// Reset clears the data/control registers and restores the idle status
// value, as if the chip had just been powered up.
func (a *ACIA) Reset() {
	a.TDR = 0
	a.RDR = 0
	a.CR = 0
	a.SR = resetSR
}

// addrSelected reports whether addr falls within the ACIA's active 2KiB
// window. Bit 11 (0x0800) set means the device is deselected.
func addrSelected(addr uint16) bool {
	return addr&0x0800 == 0
}

// Read services a CPU read of the ACIA's register window. The low bit of
// addr selects status (0) vs received data (1); addresses with A11 set are
// deselected and read as 0xFF (the bus itself decodes them to ROM and never
// passes them here).
func (a *ACIA) Read(addr uint16) byte {
	if !addrSelected(addr) {
		return 0xFF
	}

	if addr&1 == 0 {
		// Status register: a pending keystroke sets RDRF just-in-time.
		if a.Keyboard != nil && a.Keyboard.Ready() {
			a.SR = mask.Set(a.SR, srRDRF, 1)
		}
		return a.SR
	}

	// Receive data register: pull one byte, then clear RDRF.
	if a.Keyboard != nil {
		a.RDR = a.Keyboard.ReadByte()
	} else {
		a.RDR = 0
	}
	a.SR = mask.Unset(a.SR, srRDRF, srRDRF)
	return a.RDR
}

// Write services a CPU write to the ACIA's register window.
func (a *ACIA) Write(addr uint16, data byte) {
	if !addrSelected(addr) {
		return
	}

	if addr&1 == 0 {
		a.CR = data
		return
	}

	a.TDR = data
	if a.Terminal != nil {
		a.Terminal.WriteByte(data)
	}
	// TDRE is modeled as always true: this emulator has no transmit
	// latency, so the register is "empty" again the instant it is written.
	a.SR = mask.Set(a.SR, srTDRE, 1)
}
