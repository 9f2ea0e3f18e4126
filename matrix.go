package gbcam

// LowLightMatrix is the dither matrix the camera uses in dim conditions.
var LowLightMatrix = Matrix{
	0x8C, 0x98, 0xAC, 0x95, 0xA7, 0xDB, 0x8E, 0x9B, 0xB7, 0x97, 0xAA, 0xE7,
	0x92, 0xA2, 0xCB, 0x8F, 0x9D, 0xBB, 0x94, 0xA5, 0xD7, 0x91, 0xA0, 0xC7,
	0x8D, 0x9A, 0xB3, 0x96, 0xA9, 0xE3, 0x8C, 0x99, 0xAF, 0x95, 0xA8, 0xDF,
	0x93, 0xA4, 0xD3, 0x90, 0x9F, 0xC3, 0x92, 0xA3, 0xCF, 0x8F, 0x9E, 0xBF,
}

// HighLightMatrix is the dither matrix the camera uses in bright conditions.
var HighLightMatrix = Matrix{
	0x89, 0x92, 0xA2, 0x8F, 0x9E, 0xC6, 0x8A, 0x95, 0xAB, 0x91, 0xA1, 0xCF,
	0x8D, 0x9A, 0xBA, 0x8B, 0x96, 0xAE, 0x8F, 0x9D, 0xC3, 0x8C, 0x99, 0xB7,
	0x8A, 0x94, 0xA8, 0x90, 0xA0, 0xCC, 0x89, 0x93, 0xA5, 0x90, 0x9F, 0xC9,
	0x8E, 0x9C, 0xC0, 0x8C, 0x98, 0xB4, 0x8E, 0x9B, 0xBD, 0x8B, 0x97, 0xB1,
}

// UniformMatrix returns a matrix where every cell holds the same three
// thresholds.
func UniformMatrix(t0, t1, t2 byte) Matrix {
	var m Matrix
	for i := 0; i < MatrixSize; i += 3 {
		m[i], m[i+1], m[i+2] = t0, t1, t2
	}
	return m
}

// Flat returns m with dithering disabled; the thresholds of the first cell
// are repeated across the whole matrix.
func (m Matrix) Flat() Matrix {
	return UniformMatrix(m[0], m[1], m[2])
}

// MatrixByName returns one of the named presets: "low", "high", "flat-low"
// or "flat-high".
func MatrixByName(name string) (Matrix, bool) {
	switch name {
	case "low":
		return LowLightMatrix, true
	case "high":
		return HighLightMatrix, true
	case "flat-low":
		return LowLightMatrix.Flat(), true
	case "flat-high":
		return HighLightMatrix.Flat(), true
	}
	return Matrix{}, false
}
