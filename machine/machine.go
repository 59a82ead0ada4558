// Package machine wires the CPU, Bus, and ACIA together into the runnable
// unit the rest of the program drives: load a ROM, reset, step.
package machine

import (
	"fmt"

	"uk101re/acia"
	"uk101re/cpu"
	"uk101re/mem"
)

// romSize is the exact size a ROM image must be; anything else is a
// construction error, matching the original firmware loader's refusal to
// run with a truncated or oversized image.
const romSize = 32 * 1024

// Machine owns the Bus, the ACIA wired into it, and the Cpu that drives
// them both.
type Machine struct {
	Bus  *mem.Bus
	ACIA *acia.ACIA
	CPU  *cpu.Cpu
}

// New builds a Machine from a ROM image of exactly romSize bytes and the
// keyboard/terminal collaborators the ACIA needs. Call Reset before the
// first Step.
func New(rom []byte, kb acia.KeyboardSource, term acia.TerminalSink) (*Machine, error) {
	if len(rom) != romSize {
		return nil, fmt.Errorf("machine: ROM image must be exactly %d bytes, got %d", romSize, len(rom))
	}
	var romArray [romSize]byte
	copy(romArray[:], rom)

	a := acia.New(kb, term)
	bus := mem.New(romArray, a)
	c := cpu.New(bus)

	return &Machine{Bus: bus, ACIA: a, CPU: c}, nil
}

// Reset reinitializes the ACIA then the Cpu, matching the order the
// original hardware's power-on reset asserts both devices' reset lines
// simultaneously but the Cpu always reads its vector last.
func (m *Machine) Reset() {
	m.ACIA.Reset()
	m.CPU.Reset()
}

// Step executes one Cpu instruction (or interrupt entry) and returns the
// number of cycles it consumed.
func (m *Machine) Step() int {
	return m.CPU.Step()
}

// IRQ forwards the current IRQ line level to the Cpu.
func (m *Machine) IRQ(level byte) {
	m.CPU.IRQ(level)
}

// NMI forwards a non-maskable interrupt request to the Cpu.
func (m *Machine) NMI() {
	m.CPU.NMI()
}
