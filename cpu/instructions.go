package cpu

// Instruction bodies. Each receives the effective address already resolved
// by the addressing mode (0 and unused for Implied/Accumulator/Relative).
// None of them touch c.cycles directly except the branches, which carry
// their own conditional extra-cycle accounting (base 2, +1 taken, +1
// taken-and-crossed-page).
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// ADC - Add with Carry. Decimal-mode formula preserved from the original
// firmware's interpreter, including its pre-adjust Z test: Z is computed
// from the raw binary sum of the nibble pairs before either nibble is
// corrected for BCD, not from the final adjusted accumulator value.
func adc(c *Cpu, addr uint16) {
	op1 := c.A
	op2 := c.read(addr)

	if c.D {
		carryIn := uint16(0)
		if c.C {
			carryIn = 1
		}
		lo := uint16(op1&0x0F) + uint16(op2&0x0F) + carryIn
		hi := uint16(op1&0xF0) + uint16(op2&0xF0)
		c.Z = (lo+hi)&0xFF == 0
		if lo > 0x09 {
			hi += 0x10
			lo += 0x06
		}
		c.N = hi&0x80 != 0
		c.V = ^(op1^op2)&(op1^byte(hi))&0x80 != 0
		if hi > 0x90 {
			hi += 0x60
		}
		c.C = hi>>8 != 0
		c.A = byte(lo&0x0F) | byte(hi&0xF0)
		return
	}

	carryIn := uint16(0)
	if c.C {
		carryIn = 1
	}
	sum := uint16(op1) + uint16(op2) + carryIn
	c.A = byte(sum)
	c.setNZ(c.A)
	c.C = sum>>8 != 0
	c.V = (op1^op2)&0x80 == 0 && (op1^c.A)&0x80 != 0
}

// SBC - Subtract with Carry. Decimal formula mirrors the firmware's own
// subtraction, including deriving N/Z/C/V from the binary difference
// (aux) rather than the BCD-adjusted result.
func sbc(c *Cpu, addr uint16) {
	op1 := c.A
	op2 := c.read(addr)

	if c.D {
		borrow := uint16(0)
		if !c.C {
			borrow = 1
		}
		aux := uint16(op1) - uint16(op2) - borrow

		lo := int16(op1&0x0F) - int16(op2&0x0F) - int16(borrow)
		hi := int16(op1&0xF0) - int16(op2&0xF0)
		if lo&0x10 != 0 {
			lo -= 6
			hi--
		}
		if hi&0x0100 != 0 {
			hi -= 0x60
		}

		c.V = (op1^op2)&byte(aux)&0x80 != 0
		c.C = aux&0xFF00 == 0
		c.Z = aux&0x00FF == 0
		c.N = aux&0x0080 != 0
		c.A = byte(lo&0x0F) | byte(hi&0xF0)
		return
	}

	carryIn := uint16(0)
	if c.C {
		carryIn = 1
	}
	sum := uint16(op1) + uint16(^op2) + carryIn
	c.A = byte(sum)
	c.setNZ(c.A)
	c.C = sum>>8 != 0
	c.V = (op1^op2)&0x80 != 0 && (op1^c.A)&0x80 != 0
}

// AND - Logical AND
func and(c *Cpu, addr uint16) {
	c.A &= c.read(addr)
	c.setNZ(c.A)
}

// ASL - Arithmetic Shift Left (memory)
func asl(c *Cpu, addr uint16) {
	v := c.read(addr)
	c.C = v&0x80 != 0
	v <<= 1
	c.setNZ(v)
	c.write(addr, v)
}

func aslAcc(c *Cpu, _ uint16) {
	c.C = c.A&0x80 != 0
	c.A <<= 1
	c.setNZ(c.A)
}

// BIT - Bit Test
func bit(c *Cpu, addr uint16) {
	v := c.read(addr)
	c.N = v&0x80 != 0
	c.V = v&0x40 != 0
	c.Z = c.A&v == 0
}

// branch is the shared engine behind every conditional branch. Relative
// mode carries no addressing-mode-computed effective address, so the
// displacement is fetched here.
func (c *Cpu) branch(taken bool) {
	disp := int8(c.fetchByte())
	if !taken {
		return
	}
	c.cycles++
	target := c.PC + uint16(disp)
	if target&0xFF00 != c.PC&0xFF00 {
		c.cycles++
	}
	c.PC = target
}

func bcc(c *Cpu, _ uint16) { c.branch(!c.C) }
func bcs(c *Cpu, _ uint16) { c.branch(c.C) }
func beq(c *Cpu, _ uint16) { c.branch(c.Z) }
func bmi(c *Cpu, _ uint16) { c.branch(c.N) }
func bne(c *Cpu, _ uint16) { c.branch(!c.Z) }
func bpl(c *Cpu, _ uint16) { c.branch(!c.N) }
func bvc(c *Cpu, _ uint16) { c.branch(!c.V) }
func bvs(c *Cpu, _ uint16) { c.branch(c.V) }

// BRK - Force Interrupt. Pushes PC+2 (the byte after the padding byte that
// follows the opcode), then flags with bit 4 set, then vectors through the
// IRQ vector, same as a hardware interrupt except for that bit.
func brk(c *Cpu, _ uint16) {
	c.PC++
	c.pushWord(c.PC)
	c.push(c.packFlags(true))
	c.I = true
	c.PC = c.readWord(vectorIRQ)
}

func clc(c *Cpu, _ uint16) { c.C = false }
func cld(c *Cpu, _ uint16) { c.D = false }
func cli(c *Cpu, _ uint16) { c.I = false }
func clv(c *Cpu, _ uint16) { c.V = false }

func (c *Cpu) compare(reg byte, addr uint16) {
	m := c.read(addr)
	c.C = reg >= m
	c.Z = reg == m
	c.N = (reg-m)&0x80 != 0
}

func cmp(c *Cpu, addr uint16) { c.compare(c.A, addr) }
func cpx(c *Cpu, addr uint16) { c.compare(c.X, addr) }
func cpy(c *Cpu, addr uint16) { c.compare(c.Y, addr) }

// DEC - Decrement Memory
func dec(c *Cpu, addr uint16) {
	v := c.read(addr) - 1
	c.setNZ(v)
	c.write(addr, v)
}

func dex(c *Cpu, _ uint16) { c.X--; c.setNZ(c.X) }
func dey(c *Cpu, _ uint16) { c.Y--; c.setNZ(c.Y) }

// EOR - Exclusive OR
func eor(c *Cpu, addr uint16) {
	c.A ^= c.read(addr)
	c.setNZ(c.A)
}

// INC - Increment Memory
func inc(c *Cpu, addr uint16) {
	v := c.read(addr) + 1
	c.setNZ(v)
	c.write(addr, v)
}

func inx(c *Cpu, _ uint16) { c.X++; c.setNZ(c.X) }
func iny(c *Cpu, _ uint16) { c.Y++; c.setNZ(c.Y) }

// JMP - Jump
func jmp(c *Cpu, addr uint16) { c.PC = addr }

// JSR - Jump to Subroutine: pushes the address of the last byte of its own
// operand, not the address of the next instruction.
func jsr(c *Cpu, addr uint16) {
	c.pushWord(c.PC - 1)
	c.PC = addr
}

func lda(c *Cpu, addr uint16) { c.A = c.read(addr); c.setNZ(c.A) }
func ldx(c *Cpu, addr uint16) { c.X = c.read(addr); c.setNZ(c.X) }
func ldy(c *Cpu, addr uint16) { c.Y = c.read(addr); c.setNZ(c.Y) }

// LSR - Logical Shift Right (memory)
func lsr(c *Cpu, addr uint16) {
	v := c.read(addr)
	c.C = v&0x01 != 0
	v >>= 1
	c.setNZ(v)
	c.write(addr, v)
}

func lsrAcc(c *Cpu, _ uint16) {
	c.C = c.A&0x01 != 0
	c.A >>= 1
	c.setNZ(c.A)
}

func nop(c *Cpu, _ uint16) {}

// ORA - Logical Inclusive OR
func ora(c *Cpu, addr uint16) {
	c.A |= c.read(addr)
	c.setNZ(c.A)
}

func pha(c *Cpu, _ uint16) { c.push(c.A) }
func php(c *Cpu, _ uint16) { c.push(c.packFlags(true)) }
func pla(c *Cpu, _ uint16) { c.A = c.pop(); c.setNZ(c.A) }
func plp(c *Cpu, _ uint16) { c.setFlags(c.pop()) }

// ROL - Rotate Left (memory)
func rol(c *Cpu, addr uint16) {
	v := c.read(addr)
	oldC := c.C
	c.C = v&0x80 != 0
	v <<= 1
	if oldC {
		v |= 0x01
	}
	c.setNZ(v)
	c.write(addr, v)
}

func rolAcc(c *Cpu, _ uint16) {
	oldC := c.C
	c.C = c.A&0x80 != 0
	c.A <<= 1
	if oldC {
		c.A |= 0x01
	}
	c.setNZ(c.A)
}

// ROR - Rotate Right (memory)
func ror(c *Cpu, addr uint16) {
	v := c.read(addr)
	oldC := c.C
	c.C = v&0x01 != 0
	v >>= 1
	if oldC {
		v |= 0x80
	}
	c.setNZ(v)
	c.write(addr, v)
}

func rorAcc(c *Cpu, _ uint16) {
	oldC := c.C
	c.C = c.A&0x01 != 0
	c.A >>= 1
	if oldC {
		c.A |= 0x80
	}
	c.setNZ(c.A)
}

// RTI - Return from Interrupt. Flags are popped ignoring bits 4 and 5,
// same as PLP.
func rti(c *Cpu, _ uint16) {
	c.setFlags(c.pop())
	c.PC = c.popWord()
}

// RTS - Return from Subroutine
func rts(c *Cpu, _ uint16) {
	c.PC = c.popWord() + 1
}

func sec(c *Cpu, _ uint16) { c.C = true }
func sed(c *Cpu, _ uint16) { c.D = true }
func sei(c *Cpu, _ uint16) { c.I = true }

func sta(c *Cpu, addr uint16) { c.write(addr, c.A) }
func stx(c *Cpu, addr uint16) { c.write(addr, c.X) }
func sty(c *Cpu, addr uint16) { c.write(addr, c.Y) }

func tax(c *Cpu, _ uint16) { c.X = c.A; c.setNZ(c.X) }
func tay(c *Cpu, _ uint16) { c.Y = c.A; c.setNZ(c.Y) }
func tsx(c *Cpu, _ uint16) { c.X = c.SP; c.setNZ(c.X) }
func txa(c *Cpu, _ uint16) { c.A = c.X; c.setNZ(c.A) }
func txs(c *Cpu, _ uint16) { c.SP = c.X }
func tya(c *Cpu, _ uint16) { c.A = c.Y; c.setNZ(c.A) }
