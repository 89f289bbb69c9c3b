package sampling

import (
	"golang.org/x/sync/errgroup"

	"github.com/mjkern/bmpjpeg/pixelgrid"
)

// Downsample reduces the Cb and Cr planes to match ratio by block
// averaging, per spec.md §4.2. 4:4:4 is a no-op and returns the input
// planes unchanged. Cb and Cr are processed on independent goroutines; they
// share no mutable state, per spec.md §5.
func Downsample(cb, cr *pixelgrid.Plane[uint8], ratio Ratio) (*pixelgrid.Plane[uint8], *pixelgrid.Plane[uint8], error) {
	factor, err := FactorFor(ratio)
	if err != nil {
		return nil, nil, err
	}
	if factor.H == 1 && factor.V == 1 {
		return cb, cr, nil
	}

	width := cb.Width()
	height := cb.Height()
	newWidth := ceilDiv(width, factor.H)
	newHeight := ceilDiv(height, factor.V)

	var newCb, newCr *pixelgrid.Plane[uint8]

	var g errgroup.Group
	g.Go(func() error {
		newCb = averageBlocks(cb, factor, newWidth, newHeight)
		return nil
	})
	g.Go(func() error {
		newCr = averageBlocks(cr, factor, newWidth, newHeight)
		return nil
	})
	_ = g.Wait()

	return newCb, newCr, nil
}

func averageBlocks(plane *pixelgrid.Plane[uint8], factor Factor, newWidth, newHeight int) *pixelgrid.Plane[uint8] {
	out := pixelgrid.New[uint8](newWidth, newHeight)
	samples := out.Samples()[:0]

	it := plane.BlockIterator(factor.H, factor.V, false)
	idx := 0
	it.ForEachBlock(func(block []uint8) {
		sum := 0
		for _, v := range block {
			sum += int(v)
		}
		samples = append(samples, uint8(sum/len(block)))
		idx++
	})

	return pixelgrid.NewFromSamples[uint8](newWidth, newHeight, samples)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
