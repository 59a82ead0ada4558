package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// flatBus is a 64 KiB RAM-backed Bus used only by these unit tests; the
// real memory map lives in package mem.
type flatBus struct {
	mem [65536]byte
}

func (b *flatBus) Read(addr uint16) byte     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v byte) { b.mem[addr] = v }

func (b *flatBus) load(addr uint16, bytes ...byte) {
	for i, v := range bytes {
		b.mem[int(addr)+i] = v
	}
}

func (b *flatBus) setResetVector(addr uint16) {
	b.mem[0xFFFC] = byte(addr)
	b.mem[0xFFFD] = byte(addr >> 8)
}

func newTestCpu() (*Cpu, *flatBus) {
	bus := &flatBus{}
	bus.setResetVector(0x8000)
	c := New(bus)
	c.Reset()
	return c, bus
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCpu()
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.True(t, c.I)
	assert.False(t, c.D)
}

func TestResetIsIdempotent(t *testing.T) {
	c, bus := newTestCpu()
	c.A, c.X, c.Y, c.SP = 1, 2, 3, 0x10
	bus.setResetVector(0x9000)
	c.Reset()
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0xFD), c.SP)
}

func TestADCBinaryCarryAndOverflow(t *testing.T) {
	c, bus := newTestCpu()
	bus.load(0x8000, 0xA9, 0x50) // LDA #$50
	bus.load(0x8002, 0x69, 0x50) // ADC #$50 -> overflow (0x50+0x50=0xA0, signed overflow)
	c.Step()
	c.Step()
	assert.Equal(t, byte(0xA0), c.A)
	assert.True(t, c.V)
	assert.True(t, c.N)
	assert.False(t, c.C)
}

func TestADCDecimalMode(t *testing.T) {
	c, bus := newTestCpu()
	bus.load(0x8000, 0xF8)       // SED
	bus.load(0x8001, 0xA9, 0x58) // LDA #$58
	bus.load(0x8003, 0x69, 0x46) // ADC #$46 -> BCD 58+46=104 => A=04, C=1
	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, byte(0x04), c.A)
	assert.True(t, c.C)
}

func TestSBCDecimalMode(t *testing.T) {
	c, bus := newTestCpu()
	bus.load(0x8000, 0xF8)       // SED
	bus.load(0x8001, 0x38)       // SEC (no borrow in)
	bus.load(0x8002, 0xA9, 0x42) // LDA #$42
	bus.load(0x8004, 0xE9, 0x29) // SBC #$29 -> BCD 42-29=13
	c.Step()
	c.Step()
	c.Step()
	c.Step()
	assert.Equal(t, byte(0x13), c.A)
	assert.True(t, c.C)
}

func TestBranchTakenCrossingPageCosts4Cycles(t *testing.T) {
	c, bus := newTestCpu()
	bus.setResetVector(0x80FD)
	c.Reset()
	bus.load(0x80FD, 0xD0, 0x10) // BNE +16, crosses from 0x80FF to 0x810F
	c.Z = false
	cycles := c.Step()
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x810F), c.PC)
}

func TestBranchNotTakenCosts2Cycles(t *testing.T) {
	c, bus := newTestCpu()
	bus.load(0x8000, 0xD0, 0x10) // BNE, but Z is set so not taken
	c.Z = true
	cycles := c.Step()
	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint16(0x8002), c.PC)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, bus := newTestCpu()
	bus.load(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	bus.load(0x9000, 0x60)             // RTS
	c.Step()
	assert.Equal(t, uint16(0x9000), c.PC)
	c.Step()
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
}

func TestStackIsLIFO(t *testing.T) {
	c, _ := newTestCpu()
	c.A = 0x11
	pha(c, 0)
	c.A = 0x22
	pha(c, 0)
	pla(c, 0)
	assert.Equal(t, byte(0x22), c.A)
	pla(c, 0)
	assert.Equal(t, byte(0x11), c.A)
}

func TestStackPointerWraps(t *testing.T) {
	c, _ := newTestCpu()
	c.SP = 0x00
	c.push(0xAB)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0xAB), c.Bus.Read(0x0100))
}

func TestPackedFlagsBit5AlwaysSetBit4OnlyOnSoftwarePush(t *testing.T) {
	c, _ := newTestCpu()
	hw := c.packFlags(false)
	sw := c.packFlags(true)
	assert.NotZero(t, hw&flagU)
	assert.Zero(t, hw&flagB)
	assert.NotZero(t, sw&flagB)
}

func TestPLPIgnoresBits4And5(t *testing.T) {
	c, _ := newTestCpu()
	c.push(0xFF)
	plp(c, 0)
	assert.True(t, c.N)
	assert.True(t, c.C)
}

func TestIRQServicedOnlyWhenIClear(t *testing.T) {
	c, bus := newTestCpu()
	bus.mem[0xFFFE] = 0x00
	bus.mem[0xFFFF] = 0xA0
	bus.load(0x8000, 0xEA) // NOP, so the first step does not BRK through the IRQ vector
	c.I = true
	c.IRQ(0)
	pc := c.PC
	c.Step()
	assert.NotEqual(t, uint16(0xA000), c.PC, "IRQ must not be serviced while I is set")
	_ = pc

	c.I = false
	c.Step()
	assert.Equal(t, uint16(0xA000), c.PC)
	assert.True(t, c.I, "servicing an interrupt sets I")
}

func TestNMIPreemptsIRQAndIgnoresIFlag(t *testing.T) {
	c, bus := newTestCpu()
	bus.mem[0xFFFA] = 0x00
	bus.mem[0xFFFB] = 0xB0
	bus.mem[0xFFFE] = 0x00
	bus.mem[0xFFFF] = 0xA0
	c.I = true
	c.IRQ(0)
	c.NMI()
	c.Step()
	assert.Equal(t, uint16(0xB000), c.PC, "a pending NMI takes priority over IRQ")
}

func TestIllegalOpcodeResetsCpu(t *testing.T) {
	c, bus := newTestCpu()
	bus.load(0x8000, 0xFF) // not in the opcode table
	c.A = 0x42
	c.Step()
	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestIndexedStoreNeverTakesPageCrossPenalty(t *testing.T) {
	c, bus := newTestCpu()
	bus.load(0x8000, 0x9D, 0xFF, 0x80) // STA $80FF,X
	c.X = 0x01                         // crosses into 0x8100
	cycles := c.Step()
	assert.Equal(t, 5, cycles, "stores use the non-penalized indexed mode")
}

func TestIndexedLoadTakesPageCrossPenalty(t *testing.T) {
	c, bus := newTestCpu()
	bus.load(0x8000, 0xBD, 0xFF, 0x80) // LDA $80FF,X
	c.X = 0x01
	cycles := c.Step()
	assert.Equal(t, 5, cycles)
}
