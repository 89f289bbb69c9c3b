// Command bmpjpeg encodes a 24-bit uncompressed BMP image into a baseline
// JFIF JPEG file.
package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	bmpjpeg "github.com/mjkern/bmpjpeg"
	"github.com/mjkern/bmpjpeg/sampling"
	"github.com/mjkern/bmpjpeg/transform"
)

type cli struct {
	Image     string `required:"" help:"Input BMP image path."`
	Output    string `short:"o" help:"Output JPEG path. Defaults to the input path with .bmp replaced by .jpeg."`
	Ratio     string `name:"subsampling-ratio" short:"s" default:"4:2:0" help:"Chrominance subsampling ratio: 4:4:4, 4:2:2, or 4:2:0."`
	Algorithm string `name:"dct-algorithm" short:"d" default:"real" help:"Forward DCT algorithm: real or bin."`
	Verbose   bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("bmpjpeg"),
		kong.Description("Encodes a 24-bit BMP image into a baseline JFIF JPEG."),
		kong.UsageOnError(),
	)

	if !strings.HasSuffix(args.Image, ".bmp") {
		ctx.Fatalf("input image must be a .bmp file, got %q", args.Image)
	}

	output := args.Output
	if output == "" {
		output = strings.TrimSuffix(args.Image, ".bmp") + ".jpeg"
	}

	ratio, err := sampling.Parse(args.Ratio)
	ctx.FatalIfErrorf(err)
	algorithm, err := transform.ParseAlgorithm(args.Algorithm)
	ctx.FatalIfErrorf(err)

	zapConfig := zap.NewDevelopmentConfig()
	if args.Verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := zapConfig.Build()
	ctx.FatalIfErrorf(err)
	defer logger.Sync()

	logger.Debug("parsed arguments",
		zap.String("image", args.Image),
		zap.String("output", output),
		zap.String("ratio", args.Ratio),
		zap.String("algorithm", args.Algorithm),
	)

	outFile, err := os.Create(output)
	ctx.FatalIfErrorf(err)
	defer outFile.Close()

	encoder := bmpjpeg.NewEncoder(bmpjpeg.Options{
		Ratio:     ratio,
		Algorithm: algorithm,
		Logger:    logger,
	})

	if err := encoder.EncodeFile(args.Image, outFile); err != nil {
		logger.Error("encode failed", zap.Error(err))
		os.Remove(output)
		ctx.Exit(1)
	}
}
