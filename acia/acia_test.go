package acia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeKeyboard struct {
	queue []byte
}

func (k *fakeKeyboard) Ready() bool { return len(k.queue) > 0 }

func (k *fakeKeyboard) ReadByte() byte {
	if len(k.queue) == 0 {
		return 0
	}
	b := k.queue[0]
	k.queue = k.queue[1:]
	return b
}

type fakeTerminal struct {
	written []byte
}

func (t *fakeTerminal) WriteByte(b byte) { t.written = append(t.written, b) }

func TestResetStatus(t *testing.T) {
	a := New(&fakeKeyboard{}, &fakeTerminal{})
	assert.Equal(t, byte(0x0E), a.SR)
	assert.Equal(t, byte(0), a.RDR)
	assert.Equal(t, byte(0), a.TDR)
}

func TestEcho(t *testing.T) {
	kb := &fakeKeyboard{queue: []byte{0x41}}
	term := &fakeTerminal{}
	a := New(kb, term)

	sr := a.Read(0xF000)
	assert.Equal(t, byte(1), sr&0x01, "RDRF should be set once a byte is ready")

	data := a.Read(0xF001)
	assert.Equal(t, byte(0x41), data)
	assert.Equal(t, byte(0), a.Read(0xF000)&0x01, "RDRF clears after the byte is consumed")

	a.Write(0xF001, data)
	assert.Equal(t, []byte{0x41}, term.written)
	assert.Equal(t, byte(1), (a.SR>>1)&0x01, "TDRE stays set")
}

func TestDeselectedWhenA11Set(t *testing.T) {
	kb := &fakeKeyboard{queue: []byte{0x7F}}
	a := New(kb, &fakeTerminal{})

	assert.Equal(t, byte(0xFF), a.Read(0xF800))
	a.Write(0xF801, 0x99)
	assert.Equal(t, byte(0), a.TDR, "write with A11 set must be ignored")
}

func TestControlRegisterWriteHasNoSideEffect(t *testing.T) {
	a := New(&fakeKeyboard{}, &fakeTerminal{})
	a.Write(0xF000, 0x03)
	assert.Equal(t, byte(0x03), a.CR)
}
