package cliopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	opts, err := Parse([]string{"uk101re"})
	require.NoError(t, err)
	assert.Equal(t, defaultROMFile, opts.ROMFile)
	assert.False(t, opts.Turbo)
	assert.False(t, opts.HasDataFile)
}

func TestTurboAndCustomROM(t *testing.T) {
	opts, err := Parse([]string{"uk101re", "-t", "-r", "custom.rom"})
	require.NoError(t, err)
	assert.True(t, opts.Turbo)
	assert.Equal(t, "custom.rom", opts.ROMFile)
}

func TestPositionalDataFile(t *testing.T) {
	opts, err := Parse([]string{"uk101re", "program.dat"})
	require.NoError(t, err)
	assert.True(t, opts.HasDataFile)
	assert.Equal(t, "program.dat", opts.DataFile)
}

func TestUnknownFlagIsAnError(t *testing.T) {
	_, err := Parse([]string{"uk101re", "--nonexistent"})
	assert.Error(t, err)
}
