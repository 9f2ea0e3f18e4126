package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	b := make([]byte, FrameSize)
	for i := range b {
		b[i] = byte(i)
	}

	f, err := Decode(bytes.NewReader(b))
	require.Nil(t, err)
	assert.Equal(t, byte(Width+1), f.At(1, 1))

	var out bytes.Buffer
	require.Nil(t, Encode(&out, f))
	assert.Equal(t, b, out.Bytes())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, FrameSize-1)))
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(make([]byte, FrameSize+1)))
	assert.Equal(t, errTooMuch, err)

	assert.NotNil(t, Encode(new(bytes.Buffer), &RawFrame{Pix: make([]byte, 10)}))
}

func TestCropToSensor(t *testing.T) {
	tables := []struct {
		in, want image.Rectangle
	}{
		{image.Rect(0, 0, Width, Height), image.Rect(0, 0, Width, Height)},
		{image.Rect(0, 0, 256, 120), image.Rect(64, 0, 192, 120)},
		{image.Rect(0, 0, 128, 240), image.Rect(0, 60, 128, 180)},
		{image.Rect(10, 20, 266, 260), image.Rect(10, 20, 266, 260)},
	}
	for _, table := range tables {
		assert.Equal(t, table.want, cropToSensor(table.in))
	}
}

func TestFromImageExact(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, Width, Height))
	m.Set(3, 4, color.White)
	m.Set(5, 6, color.RGBA{0x80, 0x80, 0x80, 0xff})

	f := FromImage(m)
	assert.Len(t, f.Pix, FrameSize)
	assert.Equal(t, uint8(0xff), f.At(3, 4))
	assert.Equal(t, uint8(0x80), f.At(5, 6))
	assert.Equal(t, uint8(0x00), f.At(0, 0))
}

func TestFromImageScaled(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 640, 480))
	for i := range m.Pix {
		m.Pix[i] = 100
	}

	f := FromImage(m)
	assert.Len(t, f.Pix, FrameSize)
	for _, v := range f.Pix {
		if !assert.InDelta(t, 100, int(v), 1) {
			break
		}
	}
}

func TestLoad(t *testing.T) {
	f, err := Load(bytes.NewReader(Fill(42).Pix))
	require.Nil(t, err)
	assert.Equal(t, Fill(42), f)

	var b bytes.Buffer
	require.Nil(t, png.Encode(&b, Fill(7).Gray()))
	f, err = Load(&b)
	require.Nil(t, err)
	assert.Equal(t, Fill(7), f)

	_, err = Load(bytes.NewReader([]byte("not an image")))
	assert.NotNil(t, err)
}
