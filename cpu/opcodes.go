package cpu

// An Opcode associates one of the 256 possible byte values with an
// addressing mode, a base cycle cost, whether a page-crossing index adds a
// cycle, and the instruction body that executes it. 151 of the 256 values
// are documented 6502 instructions; the rest are illegal and handled by
// Cpu.illegalOpcode.
type Opcode struct {
	Mode              AddressingMode
	Base              int // cycles charged unconditionally
	PenalizePageCross bool
	Name              string // mnemonic
	Exec              func(c *Cpu, addr uint16)
}

// opcodes is the full documented 6502 instruction set. Where an addressing
// mode has penalized (extra cycle on page cross) and non-penalized
// siblings, reads use the penalized mode and stores/read-modify-write
// instructions use the NP mode, matching real 6502 timing.
var opcodes = map[byte]Opcode{
	// ADC
	0x69: {Mode: Immediate, Base: 2, Name: "ADC", Exec: adc},
	0x65: {Mode: ZeroPage, Base: 3, Name: "ADC", Exec: adc},
	0x75: {Mode: ZeroPageX, Base: 4, Name: "ADC", Exec: adc},
	0x6D: {Mode: Absolute, Base: 4, Name: "ADC", Exec: adc},
	0x7D: {Mode: AbsoluteX, Base: 4, PenalizePageCross: true, Name: "ADC", Exec: adc},
	0x79: {Mode: AbsoluteY, Base: 4, PenalizePageCross: true, Name: "ADC", Exec: adc},
	0x61: {Mode: IndirectX, Base: 6, Name: "ADC", Exec: adc},
	0x71: {Mode: IndirectY, Base: 5, PenalizePageCross: true, Name: "ADC", Exec: adc},

	// AND
	0x29: {Mode: Immediate, Base: 2, Name: "AND", Exec: and},
	0x25: {Mode: ZeroPage, Base: 3, Name: "AND", Exec: and},
	0x35: {Mode: ZeroPageX, Base: 4, Name: "AND", Exec: and},
	0x2D: {Mode: Absolute, Base: 4, Name: "AND", Exec: and},
	0x3D: {Mode: AbsoluteX, Base: 4, PenalizePageCross: true, Name: "AND", Exec: and},
	0x39: {Mode: AbsoluteY, Base: 4, PenalizePageCross: true, Name: "AND", Exec: and},
	0x21: {Mode: IndirectX, Base: 6, Name: "AND", Exec: and},
	0x31: {Mode: IndirectY, Base: 5, PenalizePageCross: true, Name: "AND", Exec: and},

	// ASL
	0x0A: {Mode: Accumulator, Base: 2, Name: "ASL", Exec: aslAcc},
	0x06: {Mode: ZeroPage, Base: 5, Name: "ASL", Exec: asl},
	0x16: {Mode: ZeroPageX, Base: 6, Name: "ASL", Exec: asl},
	0x0E: {Mode: Absolute, Base: 6, Name: "ASL", Exec: asl},
	0x1E: {Mode: AbsoluteXNP, Base: 7, Name: "ASL", Exec: asl},

	// branches
	0x10: {Mode: Relative, Base: 2, Name: "BPL", Exec: bpl},
	0x30: {Mode: Relative, Base: 2, Name: "BMI", Exec: bmi},
	0x50: {Mode: Relative, Base: 2, Name: "BVC", Exec: bvc},
	0x70: {Mode: Relative, Base: 2, Name: "BVS", Exec: bvs},
	0x90: {Mode: Relative, Base: 2, Name: "BCC", Exec: bcc},
	0xB0: {Mode: Relative, Base: 2, Name: "BCS", Exec: bcs},
	0xD0: {Mode: Relative, Base: 2, Name: "BNE", Exec: bne},
	0xF0: {Mode: Relative, Base: 2, Name: "BEQ", Exec: beq},

	// BIT
	0x24: {Mode: ZeroPage, Base: 3, Name: "BIT", Exec: bit},
	0x2C: {Mode: Absolute, Base: 4, Name: "BIT", Exec: bit},

	// BRK
	0x00: {Mode: Implied, Base: 7, Name: "BRK", Exec: brk},

	// clear/set flags
	0x18: {Mode: Implied, Base: 2, Name: "CLC", Exec: clc},
	0x38: {Mode: Implied, Base: 2, Name: "SEC", Exec: sec},
	0x58: {Mode: Implied, Base: 2, Name: "CLI", Exec: cli},
	0x78: {Mode: Implied, Base: 2, Name: "SEI", Exec: sei},
	0xB8: {Mode: Implied, Base: 2, Name: "CLV", Exec: clv},
	0xD8: {Mode: Implied, Base: 2, Name: "CLD", Exec: cld},
	0xF8: {Mode: Implied, Base: 2, Name: "SED", Exec: sed},

	// CMP
	0xC9: {Mode: Immediate, Base: 2, Name: "CMP", Exec: cmp},
	0xC5: {Mode: ZeroPage, Base: 3, Name: "CMP", Exec: cmp},
	0xD5: {Mode: ZeroPageX, Base: 4, Name: "CMP", Exec: cmp},
	0xCD: {Mode: Absolute, Base: 4, Name: "CMP", Exec: cmp},
	0xDD: {Mode: AbsoluteX, Base: 4, PenalizePageCross: true, Name: "CMP", Exec: cmp},
	0xD9: {Mode: AbsoluteY, Base: 4, PenalizePageCross: true, Name: "CMP", Exec: cmp},
	0xC1: {Mode: IndirectX, Base: 6, Name: "CMP", Exec: cmp},
	0xD1: {Mode: IndirectY, Base: 5, PenalizePageCross: true, Name: "CMP", Exec: cmp},

	// CPX/CPY
	0xE0: {Mode: Immediate, Base: 2, Name: "CPX", Exec: cpx},
	0xE4: {Mode: ZeroPage, Base: 3, Name: "CPX", Exec: cpx},
	0xEC: {Mode: Absolute, Base: 4, Name: "CPX", Exec: cpx},
	0xC0: {Mode: Immediate, Base: 2, Name: "CPY", Exec: cpy},
	0xC4: {Mode: ZeroPage, Base: 3, Name: "CPY", Exec: cpy},
	0xCC: {Mode: Absolute, Base: 4, Name: "CPY", Exec: cpy},

	// DEC/DEX/DEY
	0xC6: {Mode: ZeroPage, Base: 5, Name: "DEC", Exec: dec},
	0xD6: {Mode: ZeroPageX, Base: 6, Name: "DEC", Exec: dec},
	0xCE: {Mode: Absolute, Base: 6, Name: "DEC", Exec: dec},
	0xDE: {Mode: AbsoluteXNP, Base: 7, Name: "DEC", Exec: dec},
	0xCA: {Mode: Implied, Base: 2, Name: "DEX", Exec: dex},
	0x88: {Mode: Implied, Base: 2, Name: "DEY", Exec: dey},

	// EOR
	0x49: {Mode: Immediate, Base: 2, Name: "EOR", Exec: eor},
	0x45: {Mode: ZeroPage, Base: 3, Name: "EOR", Exec: eor},
	0x55: {Mode: ZeroPageX, Base: 4, Name: "EOR", Exec: eor},
	0x4D: {Mode: Absolute, Base: 4, Name: "EOR", Exec: eor},
	0x5D: {Mode: AbsoluteX, Base: 4, PenalizePageCross: true, Name: "EOR", Exec: eor},
	0x59: {Mode: AbsoluteY, Base: 4, PenalizePageCross: true, Name: "EOR", Exec: eor},
	0x41: {Mode: IndirectX, Base: 6, Name: "EOR", Exec: eor},
	0x51: {Mode: IndirectY, Base: 5, PenalizePageCross: true, Name: "EOR", Exec: eor},

	// INC/INX/INY
	0xE6: {Mode: ZeroPage, Base: 5, Name: "INC", Exec: inc},
	0xF6: {Mode: ZeroPageX, Base: 6, Name: "INC", Exec: inc},
	0xEE: {Mode: Absolute, Base: 6, Name: "INC", Exec: inc},
	0xFE: {Mode: AbsoluteXNP, Base: 7, Name: "INC", Exec: inc},
	0xE8: {Mode: Implied, Base: 2, Name: "INX", Exec: inx},
	0xC8: {Mode: Implied, Base: 2, Name: "INY", Exec: iny},

	// JMP/JSR
	0x4C: {Mode: Absolute, Base: 3, Name: "JMP", Exec: jmp},
	0x6C: {Mode: Indirect, Base: 5, Name: "JMP", Exec: jmp},
	0x20: {Mode: Absolute, Base: 6, Name: "JSR", Exec: jsr},

	// LDA/LDX/LDY
	0xA9: {Mode: Immediate, Base: 2, Name: "LDA", Exec: lda},
	0xA5: {Mode: ZeroPage, Base: 3, Name: "LDA", Exec: lda},
	0xB5: {Mode: ZeroPageX, Base: 4, Name: "LDA", Exec: lda},
	0xAD: {Mode: Absolute, Base: 4, Name: "LDA", Exec: lda},
	0xBD: {Mode: AbsoluteX, Base: 4, PenalizePageCross: true, Name: "LDA", Exec: lda},
	0xB9: {Mode: AbsoluteY, Base: 4, PenalizePageCross: true, Name: "LDA", Exec: lda},
	0xA1: {Mode: IndirectX, Base: 6, Name: "LDA", Exec: lda},
	0xB1: {Mode: IndirectY, Base: 5, PenalizePageCross: true, Name: "LDA", Exec: lda},

	0xA2: {Mode: Immediate, Base: 2, Name: "LDX", Exec: ldx},
	0xA6: {Mode: ZeroPage, Base: 3, Name: "LDX", Exec: ldx},
	0xB6: {Mode: ZeroPageY, Base: 4, Name: "LDX", Exec: ldx},
	0xAE: {Mode: Absolute, Base: 4, Name: "LDX", Exec: ldx},
	0xBE: {Mode: AbsoluteY, Base: 4, PenalizePageCross: true, Name: "LDX", Exec: ldx},

	0xA0: {Mode: Immediate, Base: 2, Name: "LDY", Exec: ldy},
	0xA4: {Mode: ZeroPage, Base: 3, Name: "LDY", Exec: ldy},
	0xB4: {Mode: ZeroPageX, Base: 4, Name: "LDY", Exec: ldy},
	0xAC: {Mode: Absolute, Base: 4, Name: "LDY", Exec: ldy},
	0xBC: {Mode: AbsoluteX, Base: 4, PenalizePageCross: true, Name: "LDY", Exec: ldy},

	// LSR
	0x4A: {Mode: Accumulator, Base: 2, Name: "LSR", Exec: lsrAcc},
	0x46: {Mode: ZeroPage, Base: 5, Name: "LSR", Exec: lsr},
	0x56: {Mode: ZeroPageX, Base: 6, Name: "LSR", Exec: lsr},
	0x4E: {Mode: Absolute, Base: 6, Name: "LSR", Exec: lsr},
	0x5E: {Mode: AbsoluteXNP, Base: 7, Name: "LSR", Exec: lsr},

	// NOP
	0xEA: {Mode: Implied, Base: 2, Name: "NOP", Exec: nop},

	// ORA
	0x09: {Mode: Immediate, Base: 2, Name: "ORA", Exec: ora},
	0x05: {Mode: ZeroPage, Base: 3, Name: "ORA", Exec: ora},
	0x15: {Mode: ZeroPageX, Base: 4, Name: "ORA", Exec: ora},
	0x0D: {Mode: Absolute, Base: 4, Name: "ORA", Exec: ora},
	0x1D: {Mode: AbsoluteX, Base: 4, PenalizePageCross: true, Name: "ORA", Exec: ora},
	0x19: {Mode: AbsoluteY, Base: 4, PenalizePageCross: true, Name: "ORA", Exec: ora},
	0x01: {Mode: IndirectX, Base: 6, Name: "ORA", Exec: ora},
	0x11: {Mode: IndirectY, Base: 5, PenalizePageCross: true, Name: "ORA", Exec: ora},

	// stack
	0x48: {Mode: Implied, Base: 3, Name: "PHA", Exec: pha},
	0x08: {Mode: Implied, Base: 3, Name: "PHP", Exec: php},
	0x68: {Mode: Implied, Base: 4, Name: "PLA", Exec: pla},
	0x28: {Mode: Implied, Base: 4, Name: "PLP", Exec: plp},

	// ROL/ROR
	0x2A: {Mode: Accumulator, Base: 2, Name: "ROL", Exec: rolAcc},
	0x26: {Mode: ZeroPage, Base: 5, Name: "ROL", Exec: rol},
	0x36: {Mode: ZeroPageX, Base: 6, Name: "ROL", Exec: rol},
	0x2E: {Mode: Absolute, Base: 6, Name: "ROL", Exec: rol},
	0x3E: {Mode: AbsoluteXNP, Base: 7, Name: "ROL", Exec: rol},

	0x6A: {Mode: Accumulator, Base: 2, Name: "ROR", Exec: rorAcc},
	0x66: {Mode: ZeroPage, Base: 5, Name: "ROR", Exec: ror},
	0x76: {Mode: ZeroPageX, Base: 6, Name: "ROR", Exec: ror},
	0x6E: {Mode: Absolute, Base: 6, Name: "ROR", Exec: ror},
	0x7E: {Mode: AbsoluteXNP, Base: 7, Name: "ROR", Exec: ror},

	// RTI/RTS
	0x40: {Mode: Implied, Base: 6, Name: "RTI", Exec: rti},
	0x60: {Mode: Implied, Base: 6, Name: "RTS", Exec: rts},

	// SBC
	0xE9: {Mode: Immediate, Base: 2, Name: "SBC", Exec: sbc},
	0xE5: {Mode: ZeroPage, Base: 3, Name: "SBC", Exec: sbc},
	0xF5: {Mode: ZeroPageX, Base: 4, Name: "SBC", Exec: sbc},
	0xED: {Mode: Absolute, Base: 4, Name: "SBC", Exec: sbc},
	0xFD: {Mode: AbsoluteX, Base: 4, PenalizePageCross: true, Name: "SBC", Exec: sbc},
	0xF9: {Mode: AbsoluteY, Base: 4, PenalizePageCross: true, Name: "SBC", Exec: sbc},
	0xE1: {Mode: IndirectX, Base: 6, Name: "SBC", Exec: sbc},
	0xF1: {Mode: IndirectY, Base: 5, PenalizePageCross: true, Name: "SBC", Exec: sbc},

	// STA/STX/STY - stores always use the non-penalized indexed variants.
	0x85: {Mode: ZeroPage, Base: 3, Name: "STA", Exec: sta},
	0x95: {Mode: ZeroPageX, Base: 4, Name: "STA", Exec: sta},
	0x8D: {Mode: Absolute, Base: 4, Name: "STA", Exec: sta},
	0x9D: {Mode: AbsoluteXNP, Base: 5, Name: "STA", Exec: sta},
	0x99: {Mode: AbsoluteYNP, Base: 5, Name: "STA", Exec: sta},
	0x81: {Mode: IndirectX, Base: 6, Name: "STA", Exec: sta},
	0x91: {Mode: IndirectYNP, Base: 6, Name: "STA", Exec: sta},

	0x86: {Mode: ZeroPage, Base: 3, Name: "STX", Exec: stx},
	0x96: {Mode: ZeroPageY, Base: 4, Name: "STX", Exec: stx},
	0x8E: {Mode: Absolute, Base: 4, Name: "STX", Exec: stx},

	0x84: {Mode: ZeroPage, Base: 3, Name: "STY", Exec: sty},
	0x94: {Mode: ZeroPageX, Base: 4, Name: "STY", Exec: sty},
	0x8C: {Mode: Absolute, Base: 4, Name: "STY", Exec: sty},

	// register transfers
	0xAA: {Mode: Implied, Base: 2, Name: "TAX", Exec: tax},
	0x8A: {Mode: Implied, Base: 2, Name: "TXA", Exec: txa},
	0xA8: {Mode: Implied, Base: 2, Name: "TAY", Exec: tay},
	0x98: {Mode: Implied, Base: 2, Name: "TYA", Exec: tya},
	0xBA: {Mode: Implied, Base: 2, Name: "TSX", Exec: tsx},
	0x9A: {Mode: Implied, Base: 2, Name: "TXS", Exec: txs},
}
