package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteByte(t *testing.T) {
	m := New()
	m.WriteByte(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), m.ReadByte(0x1234))
}

func TestReadWriteWordBigEndian(t *testing.T) {
	m := New()
	m.WriteWord(0x2000, 0xCAFE)
	assert.Equal(t, byte(0xCA), m.ReadByte(0x2000))
	assert.Equal(t, byte(0xFE), m.ReadByte(0x2001))
	assert.Equal(t, uint16(0xCAFE), m.ReadWord(0x2000))
}

func TestReadWordAt0xFFFFIsByteAccess(t *testing.T) {
	m := New()
	m.WriteByte(0xFFFF, 0x42)
	assert.Equal(t, uint16(0x42), m.ReadWord(0xFFFF))
}

func TestSpriteRegionWriteSetsDirty(t *testing.T) {
	m := New()
	assert.False(t, m.SpritesDirty())
	m.WriteByte(0xF000, 1)
	assert.True(t, m.SpritesDirty())
	m.ClearSpritesDirty()
	assert.False(t, m.SpritesDirty())

	m.WriteByte(0xEFFF, 1)
	assert.False(t, m.SpritesDirty(), "writes outside the sprite region must not mark dirty")
}

func TestLoadWithoutOrgFileLoadsAtZero(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "prog.bin")
	require.NoError(t, os.WriteFile(binPath, []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0o644))

	m := New()
	entry, err := m.Load(binPath)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), entry)
	assert.Equal(t, byte(0xDE), m.ReadByte(0))
	assert.Equal(t, byte(0xEF), m.ReadByte(3))
}

func TestLoadWithOrgFileUsesSegments(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "prog.bin")
	orgPath := filepath.Join(dir, "prog.org")

	require.NoError(t, os.WriteFile(binPath, []byte{0x01, 0x02, 0x03, 0x04}, 0o644))
	require.NoError(t, os.WriteFile(orgPath, []byte("0x1000 2 0\n0x2000 2 2\n"), 0o644))

	m := New()
	entry, err := m.Load(binPath)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1000), entry)
	assert.Equal(t, byte(0x01), m.ReadByte(0x1000))
	assert.Equal(t, byte(0x02), m.ReadByte(0x1001))
	assert.Equal(t, byte(0x03), m.ReadByte(0x2000))
	assert.Equal(t, byte(0x04), m.ReadByte(0x2001))
}

func TestResetClearsMemoryAndDirtyFlag(t *testing.T) {
	m := New()
	m.WriteByte(0x0010, 0x99)
	m.WriteByte(0xF010, 0x01)
	m.Reset()
	assert.Equal(t, byte(0), m.ReadByte(0x0010))
	assert.False(t, m.SpritesDirty())
}
