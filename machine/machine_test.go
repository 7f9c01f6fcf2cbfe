package machine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starfighterlily/nova16/asm"
	"github.com/starfighterlily/nova16/sound"
)

func assembleToFile(t *testing.T, src string) string {
	t.Helper()
	srcPath := filepath.Join(t.TempDir(), "prog.asm")
	require.NoError(t, os.WriteFile(srcPath, []byte(src), 0o644))
	path, err := asm.AssembleFile(srcPath)
	require.NoError(t, err)
	return path
}

func TestLoadAndRunToHalt(t *testing.T) {
	path := assembleToFile(t, "MOV R0, 0x05\nADD R0, 0x01\nHLT\n")

	m := New(sound.Noop{})
	require.NoError(t, m.Load(path))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := m.Run(ctx)
	require.NoError(t, err)

	assert.True(t, m.Halted())
	assert.Equal(t, byte(0x06), m.CPU().R[0])
}

func TestStepExecutesOneInstructionAtATime(t *testing.T) {
	path := assembleToFile(t, "MOV R0, 0x01\nMOV R1, 0x02\nHLT\n")

	m := New(sound.Noop{})
	require.NoError(t, m.Load(path))

	m.Step()
	assert.Equal(t, byte(0x01), m.CPU().R[0])
	assert.Equal(t, byte(0), m.CPU().R[1])

	m.Step()
	assert.Equal(t, byte(0x02), m.CPU().R[1])

	assert.False(t, m.Halted())
	m.Step()
	assert.True(t, m.Halted())
}

func TestResetReinitializesStackAndFramePointers(t *testing.T) {
	m := New(sound.Noop{})
	m.CPU().SetSP(0x1234)
	m.Reset()
	assert.Equal(t, uint16(0xFFFF), m.CPU().SP())
	assert.Equal(t, uint16(0xFFFF), m.CPU().FP())
}

func TestPressKeySetsStatusBit(t *testing.T) {
	path := assembleToFile(t, "KEYSTAT R0\nHLT\n")
	m := New(sound.Noop{})
	require.NoError(t, m.Load(path))

	m.PressKey('a')
	m.Step()
	assert.NotEqual(t, byte(0), m.CPU().R[0]&0x01)
}

func TestScreenReturnsCompositedDimensions(t *testing.T) {
	m := New(sound.Noop{})
	screen := m.Screen()
	assert.Len(t, screen, 256)
	assert.Len(t, screen[0], 256)
}

func TestRunStopsOnFault(t *testing.T) {
	// DIV by an immediate zero divisor raises a fault (§4.2's error
	// handling), which Run must surface instead of spinning forever.
	path := assembleToFile(t, "MOV R0, 0x0A\nDIV R0, 0x00\n")
	m := New(sound.Noop{})
	require.NoError(t, m.Load(path))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := m.Run(ctx)
	require.Error(t, err)
	assert.True(t, m.Halted())
}
