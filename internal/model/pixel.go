package model

// Pixel is one three-component colour value. Components are usually in the
// 0-255 range but nothing here enforces that.
type Pixel [3]uint32

// Individual is an ordered arrangement of pixels. Every individual observed
// outside an operator is a permutation of the original image's pixels.
type Individual []Pixel

func (ind Individual) Clone() Individual {
	if ind == nil {
		return nil
	}
	out := make(Individual, len(ind))
	copy(out, ind)
	return out
}

// Matches counts positions whose pixel equals the pixel at the same position
// of other. Only the common prefix is compared.
func (ind Individual) Matches(other Individual) int {
	n := min(len(ind), len(other))
	matches := 0
	for i := 0; i < n; i++ {
		if ind[i] == other[i] {
			matches++
		}
	}
	return matches
}

// FromFlat builds an individual from a flat r,g,b,r,g,b... sequence.
func FromFlat(flat []uint32) (Individual, error) {
	if len(flat)%3 != 0 {
		return nil, errFlatLength(len(flat))
	}
	out := make(Individual, len(flat)/3)
	for i := range out {
		out[i] = Pixel{flat[i*3], flat[i*3+1], flat[i*3+2]}
	}
	return out, nil
}

// Flatten is the inverse of FromFlat.
func (ind Individual) Flatten() []uint32 {
	out := make([]uint32, 0, len(ind)*3)
	for _, p := range ind {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}
