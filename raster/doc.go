// Package raster loads the first band of a classification raster into a
// [][]float64 that gridgraph can consume.
//
// Supported inputs:
//
//   - GeoTIFF / TIFF (.tif, .tiff) through golang.org/x/image/tiff. Georeferencing
//     tags are ignored; only pixel values are read. 8- and 16-bit gray, paletted
//     and RGB(A) layouts decode; floating-point sample formats do not.
//   - PNG (.png).
//   - ESRI ASCII grid (.asc). The spatial header is parsed and discarded.
//
// Every failure to open, read or decode a file is reported as a *LoadError so
// callers can tell load failures apart from later processing errors.
package raster
