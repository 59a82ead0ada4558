package terminal

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFileSourceServesBytesInOrder(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "datafile")
	require.NoError(t, err)
	_, err = f.Write([]byte{0x41, 0x42, 0x0A})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	s, err := NewDataFileSource(f.Name())
	require.NoError(t, err)

	assert.True(t, s.Ready())
	assert.Equal(t, byte(0x41), s.ReadByte())
	assert.Equal(t, byte(0x42), s.ReadByte())
	assert.Equal(t, byte(0x0D), s.ReadByte(), "LF must translate to CR")
	assert.False(t, s.Ready())
	assert.Equal(t, byte(0), s.ReadByte())
}

func TestDataFileSourceMissingFile(t *testing.T) {
	_, err := NewDataFileSource("/nonexistent/path/to/nowhere")
	assert.Error(t, err)
}

func TestSinkWritesEveryByte(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)
	sink.WriteByte(0x48)
	sink.WriteByte(0x49)
	assert.Equal(t, "HI", buf.String())
}
