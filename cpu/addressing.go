package cpu

// AddressingMode tells the Cpu where to find the operand of an instruction.
// Some modes have a "NP" (non-penalized) sibling: stores and read-modify-
// write instructions compute the same effective address but never take the
// extra page-cross cycle that the read variants do.
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand; PC does not advance
	Accumulator                       // the operand is the Accumulator itself
	Relative                          // branches; handled entirely by the instruction

	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	Indirect // JMP only; linear 2-byte pointer read (no page-wrap bug)

	AbsoluteX
	AbsoluteXNP
	AbsoluteY
	AbsoluteYNP

	IndirectX

	IndirectY
	IndirectYNP
)

// resolveAddress computes the effective address for mode, fetching operand
// bytes from PC as needed. crossed reports whether a page boundary was
// crossed while indexing, for modes where that matters; it is always false
// otherwise. Implied, Accumulator, and Relative carry no effective address
// and must not reach here.
func (c *Cpu) resolveAddress(mode AddressingMode) (addr uint16, crossed bool) {
	switch mode {
	case Immediate:
		addr = c.PC
		c.PC++

	case ZeroPage:
		addr = uint16(c.fetchByte())

	case ZeroPageX:
		addr = uint16(c.fetchByte()+c.X) & 0x00FF

	case ZeroPageY:
		addr = uint16(c.fetchByte()+c.Y) & 0x00FF

	case Absolute:
		addr = c.fetchWord()

	case Indirect:
		ptr := c.fetchWord()
		addr = c.readWord(ptr)

	case AbsoluteX, AbsoluteXNP:
		base := c.fetchWord()
		addr = base + uint16(c.X)
		crossed = mode == AbsoluteX && (addr&0xFF00) != (base&0xFF00)

	case AbsoluteY, AbsoluteYNP:
		base := c.fetchWord()
		addr = base + uint16(c.Y)
		crossed = mode == AbsoluteY && (addr&0xFF00) != (base&0xFF00)

	case IndirectX:
		ptr := uint16(c.fetchByte()+c.X) & 0x00FF
		lo := c.read(ptr)
		hi := c.read((ptr + 1) & 0x00FF)
		addr = uint16(hi)<<8 | uint16(lo)

	case IndirectY, IndirectYNP:
		ptr := uint16(c.fetchByte())
		lo := c.read(ptr)
		hi := c.read((ptr + 1) & 0x00FF)
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y)
		crossed = mode == IndirectY && (addr&0xFF00) != (base&0xFF00)

	default:
		panic("resolveAddress: mode has no effective address")
	}

	return addr, crossed
}
