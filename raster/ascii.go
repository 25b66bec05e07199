package raster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// asciiHeaderKeys are the ESRI ASCII grid header fields, lower-cased.
var asciiHeaderKeys = map[string]bool{
	"ncols": true, "nrows": true,
	"xllcorner": true, "yllcorner": true,
	"xllcenter": true, "yllcenter": true,
	"cellsize": true, "nodata_value": true,
	"dx": true, "dy": true,
}

// maxCells bounds ncols×nrows of an ASCII grid.
const maxCells = 1 << 30

// decodeASCII parses an ESRI ASCII grid. Header keys may appear in any order
// and case; values may wrap across lines.
func decodeASCII(r io.Reader) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	header := make(map[string]string)
	var pending string
	for sc.Scan() {
		tok := sc.Text()
		key := strings.ToLower(tok)
		if !asciiHeaderKeys[key] {
			pending = tok
			break
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: header %q has no value", ErrMalformedGrid, tok)
		}
		header[key] = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	cols, err := headerInt(header, "ncols")
	if err != nil {
		return nil, err
	}
	rows, err := headerInt(header, "nrows")
	if err != nil {
		return nil, err
	}

	if rows > maxCells || cols > maxCells || (cols > 0 && rows > maxCells/cols) {
		return nil, fmt.Errorf("%w: %d×%d grid exceeds %d cells", ErrMalformedGrid, rows, cols, maxCells)
	}
	want := rows * cols

	// values grow with the body so the header alone cannot force an allocation
	vals := make([]float64, 0, min(want, 1<<16))
	next := func() (string, bool) {
		if pending != "" {
			tok := pending
			pending = ""
			return tok, true
		}
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}
	for {
		tok, ok := next()
		if !ok {
			break
		}
		if len(vals) == want {
			return nil, fmt.Errorf("%w: trailing value %q", ErrMalformedGrid, tok)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %v", ErrMalformedGrid, len(vals), err)
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(vals) != want {
		return nil, fmt.Errorf("%w: want %d values, got %d", ErrMalformedGrid, want, len(vals))
	}

	out := make([][]float64, rows)
	for r := range out {
		out[r] = vals[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return out, nil
}

func headerInt(header map[string]string, key string) (int, error) {
	s, ok := header[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedGrid, key)
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: bad %s %q", ErrMalformedGrid, key, s)
	}
	return v, nil
}
