package pixelgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneGetSetBounds(t *testing.T) {
	p := New[int](3, 2)
	p.Set(0, 0, 1)
	p.Set(1, 2, 9)

	v, ok := p.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = p.Get(1, 2)
	require.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = p.Get(-1, 0)
	assert.False(t, ok)
	_, ok = p.Get(2, 0)
	assert.False(t, ok)
	_, ok = p.Get(0, 3)
	assert.False(t, ok)
}

func TestPlanePushNextForEachPixel(t *testing.T) {
	p := New[int](2, 2)
	p.samples = p.samples[:0]
	for i := 1; i <= 4; i++ {
		p.PushNext(i)
	}
	var got []int
	p.ForEachPixel(func(v int) { got = append(got, v) })
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestBlockViewForEachBlockPartialPadding(t *testing.T) {
	// 4x3 matrix:
	// 1 1 4 2
	// 1 2 2 3
	// 8 8 8 9
	p := New[int](4, 3)
	p.samples = p.samples[:0]
	for _, v := range []int{1, 1, 4, 2, 1, 2, 2, 3, 8, 8, 8, 9} {
		p.PushNext(v)
	}

	var biggest []int
	record := func(block []int) {
		max := block[0]
		for _, v := range block[1:] {
			if v > max {
				max = v
			}
		}
		biggest = append(biggest, max)
	}

	it := p.BlockIterator(2, 2, false)
	it.ForEachBlock(record)

	p.Set(2, 3, -10)
	it2 := p.BlockIterator(3, 1, true)
	it2.ForEachBlock(record)

	assert.Equal(t, []int{2, 4, 8, 9, 4, 2, 2, 3, 8, 0}, biggest)
}

func TestBlockViewResetAndWraparound(t *testing.T) {
	p := New[int](2, 2)
	p.samples = p.samples[:0]
	p.PushNext(1)
	p.PushNext(2)
	p.PushNext(3)
	p.PushNext(4)

	it := p.BlockIterator(2, 2, false)
	assert.Equal(t, 1, it.BlocksAmount())

	v, ok := it.GetNextPixel()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	it.Reset()
	v, ok = it.GetNextPixel()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// Drain the single block fully; the next advance should wrap block idx to 0.
	it.Reset()
	for i := 0; i < 4; i++ {
		_, _ = it.GetNextPixel()
	}
	assert.Equal(t, 0, it.blockIdx)
}

func TestBlockViewSetNextPixelCoefficientLayout(t *testing.T) {
	coeffs := New[int16](16, 8)
	it := coeffs.BlockIterator(8, 8, true)
	for b := 0; b < it.BlocksAmount(); b++ {
		for i := 0; i < 64; i++ {
			it.SetNextPixel(int16(b*100 + i))
		}
	}
	v, ok := coeffs.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, int16(0), v)
	v, ok = coeffs.Get(0, 8)
	require.True(t, ok)
	assert.Equal(t, int16(100), v)
}
