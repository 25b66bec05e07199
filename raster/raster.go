package raster

import (
	"bufio"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/tiff"
)

// Format names a supported raster encoding.
type Format string

const (
	FormatTIFF  Format = "tiff"
	FormatPNG   Format = "png"
	FormatASCII Format = "ascii"
)

// FormatOf picks the decoder for path from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".png":
		return FormatPNG, nil
	case ".asc":
		return FormatASCII, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Load reads band 1 of the raster at path. The returned grid is rectangular;
// any failure is a *LoadError.
func Load(path string) ([][]float64, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	band, err := Decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return band, nil
}

// Decode reads band 1 from r in the given format.
func Decode(r io.Reader, format Format) ([][]float64, error) {
	switch format {
	case FormatASCII:
		return decodeASCII(r)
	case FormatTIFF, FormatPNG:
		img, _, err := image.Decode(r)
		if err != nil {
			return nil, err
		}
		return FirstBand(img), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// FirstBand extracts the first channel of img as row-major values:
// the gray level for gray images, the palette index for paletted images and
// the red channel otherwise.
func FirstBand(img image.Image) [][]float64 {
	b := img.Bounds()
	out := make([][]float64, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]float64, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = sample(img, x, y)
		}
		out[y-b.Min.Y] = row
	}
	return out
}

func sample(img image.Image, x, y int) float64 {
	switch im := img.(type) {
	case *image.Gray:
		return float64(im.GrayAt(x, y).Y)
	case *image.Gray16:
		return float64(im.Gray16At(x, y).Y)
	case *image.Paletted:
		return float64(im.ColorIndexAt(x, y))
	case *image.RGBA:
		return float64(im.RGBAAt(x, y).R)
	case *image.NRGBA:
		return float64(im.NRGBAAt(x, y).R)
	case *image.RGBA64:
		return float64(im.RGBA64At(x, y).R)
	case *image.NRGBA64:
		return float64(im.NRGBA64At(x, y).R)
	default:
		// 8-bit view of anything else (e.g. YCbCr)
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		return float64(c.R)
	}
}
