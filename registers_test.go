package gbcam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistersDecode(t *testing.T) {
	tables := []struct {
		name string
		reg  [NumRegisters]byte
		want Params
		mode uint8
	}{
		{
			name: "default",
			reg:  [NumRegisters]byte{0x00, 0x00, 0x01, 0x00, 0x00, 0x00},
			want: Params{P: 0x00, M: 0x01, Exposure: 0x0100, EdgeQuarters: 2},
			mode: ModeVertical,
		},
		{
			name: "positive polarity",
			reg:  [NumRegisters]byte{0x02, 0x00, 0x12, 0x34, 0x10, 0x00},
			want: Params{P: 0x01, M: 0x00, Exposure: 0x1234, EdgeQuarters: 3},
			mode: ModeVertical,
		},
		{
			name: "two dimensional",
			reg:  [NumRegisters]byte{0x04, 0xe0, 0x00, 0x00, 0x78, 0x00},
			want: Params{P: 0x01, M: 0x02, N: true, VH: 3, EdgeQuarters: 20, Invert: true},
			mode: ModeTwoD,
		},
		{
			name: "horizontal",
			reg:  [NumRegisters]byte{0x06, 0x20, 0xff, 0xff, 0x40, 0x00},
			want: Params{P: 0x01, M: 0x02, VH: 1, Exposure: 0xffff, EdgeQuarters: 8},
			mode: ModeHorizontal,
		},
		{
			name: "degenerate",
			reg:  [NumRegisters]byte{0x01, 0x00, 0x00, 0x00, 0x80, 0x00},
			want: Params{P: 0x00, M: 0x01, EdgeQuarters: 2, E3: true},
			mode: ModeDegenerate,
		},
		{
			name: "n only",
			reg:  [NumRegisters]byte{0x00, 0x80, 0x00, 0x00, 0x00, 0xff},
			want: Params{P: 0x00, M: 0x01, N: true, EdgeQuarters: 2},
			mode: 0x8,
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			r := Registers{Reg: table.reg}
			p := r.Decode()
			assert.Equal(t, table.want, p)
			assert.Equal(t, table.mode, p.Mode())
		})
	}
}

func TestEdgeGain(t *testing.T) {
	want := []float64{0.50, 0.75, 1.00, 1.25, 2.00, 3.00, 4.00, 5.00}
	for i, g := range want {
		r := Registers{}
		r.Reg[4] = byte(i << 4)
		assert.Equal(t, g, r.Decode().EdgeGain())
	}
}

func TestClocks(t *testing.T) {
	r := DefaultRegisters()
	assert.Equal(t, 4*(32446+512+16*0x100), r.Decode().Clocks())

	r.Reg[1] = 0x80
	r.SetExposure(0)
	assert.Equal(t, 4*32446, r.Decode().Clocks())
}

func TestRegistersBinary(t *testing.T) {
	r := DefaultRegisters()
	r.Reg[5] = 0xbf

	b, err := r.MarshalBinary()
	assert.Nil(t, err)
	assert.Len(t, b, RegisterBlockSize)
	assert.Equal(t, byte(0xbf), b[5])
	assert.Equal(t, LowLightMatrix[:], b[NumRegisters:])

	var d Registers
	assert.Equal(t, errBadRegisters, d.UnmarshalBinary(b[:10]))
	assert.Nil(t, d.UnmarshalBinary(b))
	assert.Equal(t, *r, d)

	assert.Equal(t, "00 00 01 00 00 BF", r.String())
}

func TestMatrixThresholds(t *testing.T) {
	m := LowLightMatrix

	t0, t1, t2 := m.Thresholds(0, 0)
	assert.Equal(t, []byte{0x8c, 0x98, 0xac}, []byte{t0, t1, t2})

	// Cell (1, 2) is the tenth cell
	t0, t1, t2 = m.Thresholds(5, 6)
	assert.Equal(t, []byte{0x96, 0xa9, 0xe3}, []byte{t0, t1, t2})

	t0, t1, t2 = m.Thresholds(3, 3)
	assert.Equal(t, []byte{0x8f, 0x9e, 0xbf}, []byte{t0, t1, t2})
}

func TestMatrixPresets(t *testing.T) {
	flat := HighLightMatrix.Flat()
	for i := 0; i < MatrixSize; i += 3 {
		assert.Equal(t, HighLightMatrix[:3], flat[i:i+3])
	}

	for _, name := range []string{"low", "high", "flat-low", "flat-high"} {
		_, ok := MatrixByName(name)
		assert.True(t, ok, name)
	}
	_, ok := MatrixByName("medium")
	assert.False(t, ok)
}
