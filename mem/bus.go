// Package mem implements the address decoder that connects the 6502 core to
// its backing stores: 32 KiB of RAM, 32 KiB of ROM, and the ACIA's register
// window. Each Bus has an independent memory layout that begins at 0x0000;
// this machine has exactly one, unlike machines (e.g. the NES) that split
// CPU and graphics memory across separate buses.
package mem

import "uk101re/acia"

const (
	ramSize = 32 * 1024
	romSize = 32 * 1024
	ramMask = ramSize - 1
	romMask = romSize - 1
)

// device decode ranges, first match wins
const (
	romStart  = 0x8000
	aciaStart = 0xF000
	aciaEnd   = 0xF7FF
	romHiHole = 0xF800 // ROM resumes here, including the interrupt vectors
)

// Bus routes CPU reads and writes to RAM, ROM, or the ACIA, by address. It
// owns the RAM array outright; the ROM image is supplied at construction and
// never mutated; the ACIA is a separate, independently-owned component.
type Bus struct {
	RAM  [ramSize]byte
	ROM  [romSize]byte
	ACIA *acia.ACIA
}

// New returns a Bus with the given ROM image installed. rom must be exactly
// 32768 bytes; callers (the ROM loader) are responsible for enforcing that
// before construction.
func New(rom [romSize]byte, a *acia.ACIA) *Bus {
	return &Bus{ROM: rom, ACIA: a}
}

// Read decodes addr and returns the byte found there. Addresses that decode
// to no device (none exist in the default map, but this guard exists for
// completeness) return 0xFF, matching open-bus behavior on real hardware.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < romStart:
		return b.RAM[addr&ramMask]
	case addr < aciaStart:
		return b.ROM[addr&romMask]
	case addr <= aciaEnd:
		return b.ACIA.Read(addr)
	case addr >= romHiHole:
		return b.ROM[addr&romMask]
	default:
		return 0xFF
	}
}

// Write decodes addr and stores data there. Writes into the ROM region are
// silently discarded; writes to an undecoded address are a no-op.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr < romStart:
		b.RAM[addr&ramMask] = data
	case addr < aciaStart:
		// ROM: discard
	case addr <= aciaEnd:
		b.ACIA.Write(addr, data)
	case addr >= romHiHole:
		// ROM: discard
	default:
		// unmapped: discard
	}
}
