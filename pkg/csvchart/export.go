package csvchart

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// encodeFunc writes a chart in one output format.
type encodeFunc func(w io.Writer, chart *Chart, opts Options) error

// encoders maps lower-case file extensions (without dot) to encoders.
var encoders = map[string]encodeFunc{
	"png":  encodeRaster(func(w io.Writer, img image.Image) error { return png.Encode(w, img) }),
	"jpg":  encodeRaster(encodeJPEG),
	"jpeg": encodeRaster(encodeJPEG),
	"bmp":  encodeRaster(bmp.Encode),
	"tif":  encodeRaster(encodeTIFF),
	"tiff": encodeRaster(encodeTIFF),
	"svg":  encodeVector("svg"),
	"pdf":  encodeVector("pdf"),
	"xlsx": encodeXLSX,
}

// SupportedFormats returns the supported export extensions, sorted.
func SupportedFormats() []string {
	formats := make([]string, 0, len(encoders))
	for ext := range encoders {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}

// FormatOf returns the export format for a path and whether it is supported.
func FormatOf(path string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	_, ok := encoders[ext]
	return ext, ok
}

// Export writes a chart to path using default options.
func Export(chart *Chart, path string) error {
	return ExportWithOptions(chart, path, DefaultOptions())
}

// ExportWithOptions writes a chart to path. The format is chosen by the
// file extension. The file is replaced only after the whole image has been
// encoded, so a failed export never leaves a partial file behind.
func ExportWithOptions(chart *Chart, path string, opts Options) error {
	ext, ok := FormatOf(path)
	if !ok {
		return &IOError{
			Path: path,
			Op:   "encode",
			Err:  fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, filepath.Ext(path), strings.Join(SupportedFormats(), ", ")),
		}
	}

	var buf bytes.Buffer
	if err := encoders[ext](&buf, chart, opts); err != nil {
		return &IOError{Path: path, Op: "encode", Err: err}
	}

	if err := writeFile(path, buf.Bytes()); err != nil {
		return &IOError{Path: path, Op: "write", Err: err}
	}

	slog.Debug("exported chart", "path", path, "format", ext, "bytes", buf.Len())

	return nil
}

// writeFile writes data to a temp file next to path and renames it into place.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}

// RasterImage draws a chart onto an in-memory image.
func RasterImage(chart *Chart, opts Options) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(PixelsToLength(opts.Width, opts.DPI), PixelsToLength(opts.Height, opts.DPI)),
		vgimg.UseDPI(opts.DPI),
	)
	chart.Plot.Draw(draw.New(c))
	return c.Image()
}

func encodeRaster(enc func(io.Writer, image.Image) error) encodeFunc {
	return func(w io.Writer, chart *Chart, opts Options) error {
		return enc(w, RasterImage(chart, opts))
	}
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, nil)
}

func encodeVector(format string) encodeFunc {
	return func(w io.Writer, chart *Chart, opts Options) error {
		wt, err := chart.Plot.WriterTo(
			PixelsToLength(opts.Width, opts.DPI),
			PixelsToLength(opts.Height, opts.DPI),
			format,
		)
		if err != nil {
			return err
		}
		_, err = wt.WriteTo(w)
		return err
	}
}
