package transform

import "math"

const inverseSqrt2 = 1 / math.Sqrt2

// forwardRealDCT computes the reference Type-II 8x8 DCT:
//
//	F(u,v) = 1/4 * au * av * sum_x sum_y f(x,y) cos((2x+1)u*pi/16) cos((2y+1)v*pi/16)
//
// with a0 = 1/sqrt(2), else 1. Written for correctness, not performance.
func forwardRealDCT(samples Block) Block {
	var out Block
	idx := 0
	for u := 0; u < 8; u++ {
		au := 1.0
		if u == 0 {
			au = inverseSqrt2
		}
		for v := 0; v < 8; v++ {
			av := 1.0
			if v == 0 {
				av = inverseSqrt2
			}
			var sum float64
			for x := 0; x < 8; x++ {
				for y := 0; y < 8; y++ {
					f := float64(samples[x*8+y])
					sum += f *
						math.Cos(float64((2*x+1)*u)*math.Pi/16) *
						math.Cos(float64((2*y+1)*v)*math.Pi/16)
				}
			}
			out[idx] = int32(0.25 * au * av * sum)
			idx++
		}
	}
	return out
}
