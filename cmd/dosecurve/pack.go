package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/arloliu/dosecurve/compress"
	"github.com/arloliu/dosecurve/format"
	"github.com/arloliu/dosecurve/formula"
	"github.com/arloliu/dosecurve/results"
	"go.uber.org/zap"
)

// runPack compresses results files. Without file arguments it packs the plain
// results file of every kind found in the configured results directory.
func runPack(a *app, args []string) error {
	flags := a.newFlagSet("pack")
	var codec string
	flags.StringVar(&codec, "codec", "zstd", "compression codec: zstd, s2 or lz4")
	if err := a.setup(flags, args); err != nil {
		return err
	}

	ct, err := format.ParseCompression(codec)
	if err != nil {
		return err
	}
	if ct == format.CompressionNone {
		return fmt.Errorf("pack requires a compression codec, got %q", codec)
	}

	files := flags.Args()
	if len(files) == 0 {
		loader, err := results.NewLoader(a.cfg.LoaderOptions()...)
		if err != nil {
			return err
		}
		for _, kind := range formula.Kinds {
			files = append(files, loader.Path(kind))
		}
	}

	packed := 0
	for _, src := range files {
		if format.FromPath(src) != format.CompressionNone {
			a.logger.Warn("skipping compressed file", zap.String("file", src))
			continue
		}

		dst, stats, err := compress.PackFile(src, ct)
		if errors.Is(err, fs.ErrNotExist) && len(flags.Args()) == 0 {
			a.logger.Debug("no results file", zap.String("file", src))
			continue
		}
		if err != nil {
			return err
		}

		packed++
		a.logger.Info("packed results file",
			zap.String("file", dst),
			zap.Int64("original_size", stats.OriginalSize),
			zap.Int64("compressed_size", stats.CompressedSize),
		)
		fmt.Fprintf(a.stdout, "%s  %s\n", dst, stats)
	}

	if packed == 0 {
		return fmt.Errorf("nothing to pack in %s", a.cfg.Results.Dir)
	}

	return nil
}
