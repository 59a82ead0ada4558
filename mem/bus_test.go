package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uk101re/acia"
)

type fakeKeyboard struct{}

func (fakeKeyboard) Ready() bool    { return false }
func (fakeKeyboard) ReadByte() byte { return 0 }

type fakeTerminal struct{}

func (fakeTerminal) WriteByte(byte) {}

func newTestBus() *Bus {
	var rom [romSize]byte
	rom[0] = 0xAA        // 0x8000
	rom[romMask] = 0xBB  // 0xFFFF
	a := acia.New(fakeKeyboard{}, fakeTerminal{})
	return New(rom, a)
}

func TestRAMReadWrite(t *testing.T) {
	b := newTestBus()
	b.Write(0x0042, 0x7E)
	assert.Equal(t, byte(0x7E), b.Read(0x0042))
}

func TestROMReadAndWriteDiscarded(t *testing.T) {
	b := newTestBus()
	assert.Equal(t, byte(0xAA), b.Read(0x8000))
	assert.Equal(t, byte(0xBB), b.Read(0xFFFF))

	b.Write(0x8000, 0xFF)
	assert.Equal(t, byte(0xAA), b.Read(0x8000), "ROM writes must be discarded")
}

func TestROMHoleIsACIA(t *testing.T) {
	b := newTestBus()
	// status register right after reset: 0x0E, no keyboard data pending
	assert.Equal(t, byte(0x0E), b.Read(0xF000))
}

func TestACIADeselectedWhenA11Set(t *testing.T) {
	b := newTestBus()
	// 0xF400|0x0800 = 0xFC00 lies in the upper ROM range, not the ACIA window
	b.ROM[0xFC00&romMask] = 0x5A
	assert.Equal(t, byte(0x5A), b.Read(0xF400|0x0800))
}
