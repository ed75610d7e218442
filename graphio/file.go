// SPDX-License-Identifier: MIT
// Package: peelmis/graphio
//
// file.go - path based Load/Save with format and compression chosen by extension.

package graphio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/peelmis/csr"
)

const (
	methodLoad = "Load"
	methodSave = "Save"
)

// Format is a graph file encoding.
type Format int

const (
	// FormatAdjacency is the AdjacencyGraph text format (.adj).
	FormatAdjacency Format = iota
	// FormatBinary is the binary CSR format (.bin).
	FormatBinary
)

// Compression is a stream wrapper around a Format.
type Compression int

const (
	CompressNone Compression = iota
	CompressZstd
	CompressGzip
)

// Detect maps a path onto its format and compression, e.g.
// "web.bin.zst" → (FormatBinary, CompressZstd).
func Detect(path string) (Format, Compression, error) {
	name := strings.ToLower(filepath.Base(path))
	comp := CompressNone
	switch filepath.Ext(name) {
	case ".zst":
		comp = CompressZstd
		name = strings.TrimSuffix(name, ".zst")
	case ".gz":
		comp = CompressGzip
		name = strings.TrimSuffix(name, ".gz")
	}
	switch filepath.Ext(name) {
	case ".adj":
		return FormatAdjacency, comp, nil
	case ".bin":
		return FormatBinary, comp, nil
	}
	return 0, 0, fmt.Errorf("Detect: %q: %w", path, ErrUnknownFormat)
}

// Load reads a graph from path. The graph is returned exactly as stored;
// callers symmetrize it if needed.
func Load(path string) (*csr.Graph, error) {
	format, comp, err := Detect(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch comp {
	case CompressZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", methodLoad, path, err)
		}
		defer dec.Close()
		r = dec
	case CompressGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", methodLoad, path, err)
		}
		defer zr.Close()
		r = zr
	}

	var g *csr.Graph
	if format == FormatBinary {
		g, err = ReadBinary(r)
	} else {
		g, err = ReadAdjacency(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodLoad, path, err)
	}
	return g, nil
}

// Save writes g to path, creating or truncating the file.
func Save(path string, g *csr.Graph) (err error) {
	format, comp, err := Detect(path)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSave, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSave, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", methodSave, cerr)
		}
	}()

	var (
		w     io.Writer = f
		finish func() error
	)
	switch comp {
	case CompressZstd:
		enc, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", methodSave, path, err)
		}
		w, finish = enc, enc.Close
	case CompressGzip:
		zw := gzip.NewWriter(f)
		w, finish = zw, zw.Close
	}

	if format == FormatBinary {
		err = WriteBinary(w, g)
	} else {
		err = WriteAdjacency(w, g)
	}
	if err != nil {
		return fmt.Errorf("%s: %s: %w", methodSave, path, err)
	}
	if finish != nil {
		if err = finish(); err != nil {
			return fmt.Errorf("%s: %s: %w", methodSave, path, err)
		}
	}
	return nil
}
