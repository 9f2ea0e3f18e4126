package gbcam

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *CaptureDB {
	db, err := NewCaptureDB(filepath.Join(t.TempDir(), "test.db"))
	require.Nil(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestCaptureDB(t *testing.T) {
	db := newTestDB(t)

	r := DefaultRegisters()
	tiles := bytes.Repeat([]byte{0x0f}, TileBufferSize)

	id, err := db.AddCapture("a.png", "ABCDEF", r, tiles)
	require.Nil(t, err)
	assert.NotEmpty(t, id)

	again, err := db.AddCapture("a.png", "ABCDEF", r, tiles)
	require.Nil(t, err)
	assert.Equal(t, id, again)

	r2 := DefaultRegisters()
	r2.Reg[4] = 0x08
	other, err := db.AddCapture("a.png", "ABCDEF", r2, tiles)
	require.Nil(t, err)
	assert.NotEqual(t, id, other)

	c, err := db.FindCapture(other)
	require.Nil(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "a.png", c.Name)
	assert.Equal(t, "ABCDEF", c.SHA1)
	assert.Equal(t, *r2, c.Registers)
	assert.Equal(t, tiles, c.Tiles)

	captures, err := db.Captures()
	require.Nil(t, err)
	require.Len(t, captures, 2)
	assert.Equal(t, id, captures[0].ID)
	assert.Equal(t, other, captures[1].ID)
}

func TestCaptureDBMissing(t *testing.T) {
	db := newTestDB(t)

	c, err := db.FindCapture("nope")
	assert.Nil(t, err)
	assert.Nil(t, c)

	_, err = db.AddCapture("a.png", "ABCDEF", DefaultRegisters(), make([]byte, 10))
	assert.Equal(t, errBadBuffer, err)

	cam := New(db, nil)
	_, err = cam.Capture("nope")
	assert.NotNil(t, err)

	_, err = New(nil, nil).Capture("nope")
	assert.NotNil(t, err)
}
