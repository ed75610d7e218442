// SPDX-License-Identifier: MIT
// Package: peelmis/graphio
//
// binary.go - little-endian binary CSR format.

package graphio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/katalvlaran/peelmis/csr"
)

const (
	methodReadBinary  = "ReadBinary"
	methodWriteBinary = "WriteBinary"

	// binaryHeaderBytes is the n, m, sizes triple.
	binaryHeaderBytes = 3 * 8

	// readChunk bounds every allocation made before the data backing it
	// has been read.
	readChunk = 1 << 16
)

// binarySize is the value of the sizes header field for n vertices and m
// edges; ok is false when it does not fit a uint64.
func binarySize(n, m uint64) (size uint64, ok bool) {
	hiOff, offBytes := bits.Mul64(n+1, 8)
	hiEdge, edgeBytes := bits.Mul64(m, 4)
	size, c1 := bits.Add64(offBytes, edgeBytes, 0)
	size, c2 := bits.Add64(size, binaryHeaderBytes, 0)
	return size, hiOff|hiEdge|c1|c2 == 0
}

// readUints reads count little-endian values in chunks of readChunk.
func readUints[T uint32 | uint64](r io.Reader, count uint64) ([]T, error) {
	out := make([]T, 0, min(count, readChunk))
	buf := make([]T, min(count, readChunk))
	for left := count; left > 0; {
		k := min(left, readChunk)
		if err := binary.Read(r, binary.LittleEndian, buf[:k]); err != nil {
			return nil, short(err)
		}
		out = append(out, buf[:k]...)
		left -= k
	}
	return out, nil
}

// ReadBinary parses the binary CSR format: uint64 n, m, sizes; n+1 uint64
// offsets; m uint32 edge targets. All values are little endian.
//
// Errors: ErrSizeMismatch when sizes != (n+1)*8 + m*4 + 24 or that sum
// overflows, ErrTruncated on a short stream, csr validation errors for
// malformed arrays.
//
// Complexity: O(n + m); memory grows with the data actually read.
func ReadBinary(r io.Reader) (*csr.Graph, error) {
	br := bufio.NewReader(r)
	var hdr [3]uint64
	if err := binary.Read(br, binary.LittleEndian, hdr[:]); err != nil {
		return nil, fmt.Errorf("%s: header: %w", methodReadBinary, short(err))
	}
	n, m, sizes := hdr[0], hdr[1], hdr[2]
	if n > uint64(csr.MaxVertices) {
		return nil, fmt.Errorf("%s: n=%d: %w", methodReadBinary, n, csr.ErrTooManyVertices)
	}
	want, ok := binarySize(n, m)
	if !ok {
		return nil, fmt.Errorf("%s: n=%d m=%d overflow the size field: %w", methodReadBinary, n, m, ErrSizeMismatch)
	}
	if sizes != want {
		return nil, fmt.Errorf("%s: sizes=%d, want %d: %w", methodReadBinary, sizes, want, ErrSizeMismatch)
	}

	offsets, err := readUints[uint64](br, n+1)
	if err != nil {
		return nil, fmt.Errorf("%s: offsets: %w", methodReadBinary, err)
	}
	edges, err := readUints[uint32](br, m)
	if err != nil {
		return nil, fmt.Errorf("%s: edges: %w", methodReadBinary, err)
	}

	g, err := csr.New(int(n), offsets, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadBinary, err)
	}
	return g, nil
}

// WriteBinary writes g in the binary CSR format.
func WriteBinary(w io.Writer, g *csr.Graph) error {
	bw := bufio.NewWriter(w)
	n, m := uint64(g.N), uint64(g.M)
	size, _ := binarySize(n, m)
	hdr := [3]uint64{n, m, size}
	for _, part := range []any{hdr[:], g.Offsets, g.Edges} {
		if err := binary.Write(bw, binary.LittleEndian, part); err != nil {
			return fmt.Errorf("%s: %w", methodWriteBinary, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteBinary, err)
	}
	return nil
}

// short maps the io end-of-stream errors onto ErrTruncated.
func short(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
