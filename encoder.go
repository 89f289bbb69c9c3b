// Package bmpjpeg implements a baseline sequential JFIF JPEG encoder: BMP
// decoding, YCbCr color conversion, chrominance downsampling, forward DCT
// and quantization, and MCU-interleaved Huffman entropy coding (spec.md).
package bmpjpeg

import (
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mjkern/bmpjpeg/bmp"
	"github.com/mjkern/bmpjpeg/colorspace"
	"github.com/mjkern/bmpjpeg/entropy"
	"github.com/mjkern/bmpjpeg/huffman"
	"github.com/mjkern/bmpjpeg/jfif"
	"github.com/mjkern/bmpjpeg/pixelgrid"
	"github.com/mjkern/bmpjpeg/sampling"
	"github.com/mjkern/bmpjpeg/transform"
)

// Options configures an Encoder. The zero value selects 4:2:0 chrominance
// subsampling, the real reference DCT, and a no-op logger.
type Options struct {
	Ratio     sampling.Ratio
	Algorithm transform.Algorithm
	Logger    *zap.Logger
}

// Encoder turns a decoded BMP image into a baseline JFIF JPEG byte stream.
type Encoder struct {
	ratio     sampling.Ratio
	algorithm transform.Algorithm
	logger    *zap.Logger
}

// NewEncoder builds an Encoder from opts, defaulting an unset Ratio to
// 4:2:0 and an unset Logger to a no-op logger.
func NewEncoder(opts Options) *Encoder {
	ratio := opts.Ratio
	if ratio == (sampling.Ratio{}) {
		ratio = sampling.Default420
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Encoder{ratio: ratio, algorithm: opts.Algorithm, logger: logger}
}

// EncodeFile decodes the BMP at bmpPath and writes the resulting JPEG to w.
func (e *Encoder) EncodeFile(bmpPath string, w io.Writer) error {
	img, err := bmp.Open(bmpPath)
	if err != nil {
		return err
	}
	return e.Encode(img, w)
}

// Encode runs the full BMP-to-JPEG compression pipeline: color conversion,
// downsampling, DCT/quantization (each on its own goroutine), and
// MCU-interleaved entropy-coded serialization.
func (e *Encoder) Encode(img *bmp.Image, w io.Writer) error {
	e.logger.Info("starting encode",
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.String("ratio", e.ratio.String()),
		zap.String("algorithm", e.algorithm.String()),
	)

	factor, err := sampling.FactorFor(e.ratio)
	if err != nil {
		return err
	}

	yPlane, cbPlane, crPlane := convertColor(img.Pixels)
	e.logger.Debug("color conversion complete")

	cb, cr, err := sampling.Downsample(cbPlane, crPlane, e.ratio)
	if err != nil {
		return err
	}
	e.logger.Debug("chrominance downsampling complete",
		zap.Int("cb_width", cb.Width()), zap.Int("cb_height", cb.Height()))

	// Every component's coefficient plane must land on a whole-MCU boundary,
	// not just a whole-block one: the luma plane is walked mcuWidth x
	// mcuHeight blocks at a time in writeScanData, and chroma's block count
	// must match the MCU count exactly so Cb/Cr contribute one block per
	// MCU.
	mcuWidth := 8 * factor.H
	mcuHeight := 8 * factor.V
	mcuCols := ceilDiv(img.Width, mcuWidth)
	mcuRows := ceilDiv(img.Height, mcuHeight)
	paddedWidth := mcuCols * mcuWidth
	paddedHeight := mcuRows * mcuHeight
	chromaWidth := mcuCols * 8
	chromaHeight := mcuRows * 8

	yPadded := padPlane(yPlane, paddedWidth, paddedHeight)

	yCoeffs := pixelgrid.New[int16](paddedWidth, paddedHeight)
	cbCoeffs := pixelgrid.New[int16](chromaWidth, chromaHeight)
	crCoeffs := pixelgrid.New[int16](chromaWidth, chromaHeight)

	var g errgroup.Group
	g.Go(func() error {
		return processPlane(yPadded, yCoeffs, transform.LuminanceQuantTable, e.algorithm)
	})
	g.Go(func() error {
		return processPlane(cb, cbCoeffs, transform.ChrominanceQuantTable, e.algorithm)
	})
	g.Go(func() error {
		return processPlane(cr, crCoeffs, transform.ChrominanceQuantTable, e.algorithm)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	e.logger.Debug("forward dct and quantization complete")

	if err := jfif.WriteHeaders(w, img.Width, img.Height, factor); err != nil {
		return err
	}
	if err := writeScanData(w, yCoeffs, cbCoeffs, crCoeffs, factor); err != nil {
		return err
	}
	if err := jfif.WriteEOI(w); err != nil {
		return err
	}

	e.logger.Info("encode complete")
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// padPlane extends src to width x height, zero-filling the margin. Used to
// bring the luma plane up to a whole-MCU boundary before the block walk, so
// every block processPlane reads is a real, full-sized one.
func padPlane(src *pixelgrid.Plane[uint8], width, height int) *pixelgrid.Plane[uint8] {
	if src.Width() == width && src.Height() == height {
		return src
	}
	out := pixelgrid.New[uint8](width, height)
	for row := 0; row < src.Height(); row++ {
		for col := 0; col < src.Width(); col++ {
			v, _ := src.Get(row, col)
			out.Set(row, col, v)
		}
	}
	return out
}

// convertColor splits an RGB plane into independent Y, Cb, and Cr planes.
func convertColor(pixels *pixelgrid.Plane[colorspace.RGB]) (y, cb, cr *pixelgrid.Plane[uint8]) {
	w, h := pixels.Width(), pixels.Height()
	ySamples := make([]uint8, 0, w*h)
	cbSamples := make([]uint8, 0, w*h)
	crSamples := make([]uint8, 0, w*h)
	pixels.ForEachPixel(func(p colorspace.RGB) {
		ycc := colorspace.RGBToYCbCr(p)
		ySamples = append(ySamples, ycc.Y)
		cbSamples = append(cbSamples, ycc.Cb)
		crSamples = append(crSamples, ycc.Cr)
	})
	y = pixelgrid.NewFromSamples[uint8](w, h, ySamples)
	cb = pixelgrid.NewFromSamples[uint8](w, h, cbSamples)
	cr = pixelgrid.NewFromSamples[uint8](w, h, crSamples)
	return
}

// processPlane runs every 8x8 block of src (zero-padded at the edges)
// through the forward DCT and quantizer, writing coefficients into dst.
func processPlane(src *pixelgrid.Plane[uint8], dst *pixelgrid.Plane[int16], table transform.QuantTable, alg transform.Algorithm) error {
	srcIt := src.BlockIterator(8, 8, true)
	dstIt := dst.BlockIterator(8, 8, false)
	var err error
	srcIt.ForEachBlock(func(block []uint8) {
		if err != nil {
			return
		}
		var samples [64]uint8
		copy(samples[:], block)
		var coeffs [64]int16
		coeffs, err = transform.ProcessBlock(samples[:], table, alg)
		if err != nil {
			return
		}
		for _, v := range coeffs {
			dstIt.SetNextPixel(v)
		}
	})
	return err
}

// writeScanData walks the three coefficient planes in MCU-interleaved
// order: each MCU holds factor.H*factor.V luminance blocks followed by
// one Cb block and one Cr block, per spec.md §5.
func writeScanData(w io.Writer, yCoeffs, cbCoeffs, crCoeffs *pixelgrid.Plane[int16], factor sampling.Factor) error {
	mcuWidth := 8 * factor.H
	mcuHeight := 8 * factor.V
	yIt := yCoeffs.BlockIterator(mcuWidth, mcuHeight, false)
	cbIt := cbCoeffs.BlockIterator(8, 8, false)
	crIt := crCoeffs.BlockIterator(8, 8, false)
	mcuCount := cbIt.BlocksAmount()

	bw := entropy.NewBitWriter(w)
	var prevY, prevCb, prevCr int16
	dcY, acY := huffman.Get(huffman.LumaDC), huffman.Get(huffman.LumaAC)
	dcC, acC := huffman.Get(huffman.ChromaDC), huffman.Get(huffman.ChromaAC)

	var mcuBuf, cbBuf, crBuf []int16
	for i := 0; i < mcuCount; i++ {
		if i != 0 {
			yIt.IncrementBlockIdx()
			cbIt.IncrementBlockIdx()
			crIt.IncrementBlockIdx()
		}

		yIt.Block(&mcuBuf)
		subPlane := pixelgrid.NewFromSamples[int16](mcuWidth, mcuHeight, append([]int16(nil), mcuBuf...))
		var encErr error
		subPlane.BlockIterator(8, 8, false).ForEachBlock(func(block []int16) {
			if encErr != nil {
				return
			}
			var arr [64]int16
			copy(arr[:], block)
			encErr = entropy.EncodeBlock(bw, arr, &prevY, dcY, acY)
		})
		if encErr != nil {
			return encErr
		}

		cbIt.Block(&cbBuf)
		var cbArr [64]int16
		copy(cbArr[:], cbBuf)
		if err := entropy.EncodeBlock(bw, cbArr, &prevCb, dcC, acC); err != nil {
			return err
		}

		crIt.Block(&crBuf)
		var crArr [64]int16
		copy(crArr[:], crBuf)
		if err := entropy.EncodeBlock(bw, crArr, &prevCr, dcC, acC); err != nil {
			return err
		}
	}

	return bw.Close()
}
