// SPDX-License-Identifier: MIT
// Package: peelmis/graphio
//
// adjacency.go - AdjacencyGraph text format.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/peelmis/csr"
)

const (
	methodReadAdjacency  = "ReadAdjacency"
	methodWriteAdjacency = "WriteAdjacency"

	headerAdjacency         = "AdjacencyGraph"
	headerWeightedAdjacency = "WeightedAdjacencyGraph"
)

// tokenizer yields whitespace separated tokens.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", err
	}
	return "", ErrTruncated
}

func (t *tokenizer) uint(bits int) (uint64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(tok, 10, bits)
}

// readHeader consumes blank and '#' comment lines and returns the first
// other line, trimmed.
func readHeader(br *bufio.Reader) (string, error) {
	for {
		line, err := br.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && trimmed[0] != '#' {
			return trimmed, nil
		}
		if err == io.EOF {
			return "", ErrTruncated
		}
		if err != nil {
			return "", err
		}
	}
}

// ReadAdjacency parses an AdjacencyGraph (or WeightedAdjacencyGraph) text
// stream into a validated Graph. Edge weights are read and discarded.
//
// Errors: ErrBadHeader, ErrTruncated, csr.ErrBadOffsets, csr.ErrEdgeOutOfRange,
// csr.ErrTooManyVertices, or a strconv error for a malformed number.
func ReadAdjacency(r io.Reader) (*csr.Graph, error) {
	br := bufio.NewReader(r)
	head, err := readHeader(br)
	if err != nil {
		return nil, fmt.Errorf("%s: header: %w", methodReadAdjacency, err)
	}
	weighted := false
	switch head {
	case headerAdjacency:
	case headerWeightedAdjacency:
		weighted = true
	default:
		return nil, fmt.Errorf("%s: %q: %w", methodReadAdjacency, head, ErrBadHeader)
	}

	tz := newTokenizer(br)
	n, err := tz.uint(64)
	if err != nil {
		return nil, fmt.Errorf("%s: n: %w", methodReadAdjacency, err)
	}
	m, err := tz.uint(64)
	if err != nil {
		return nil, fmt.Errorf("%s: m: %w", methodReadAdjacency, err)
	}
	if n > uint64(csr.MaxVertices) {
		return nil, fmt.Errorf("%s: n=%d: %w", methodReadAdjacency, n, csr.ErrTooManyVertices)
	}

	// Header counts are untrusted: slices grow as tokens arrive, so a forged
	// count ends in ErrTruncated rather than a huge allocation.
	offsets := make([]uint64, 0, min(n+1, readChunk))
	for i := uint64(0); i < n; i++ {
		off, err := tz.uint(64)
		if err != nil {
			return nil, fmt.Errorf("%s: offset %d: %w", methodReadAdjacency, i, err)
		}
		offsets = append(offsets, off)
	}
	offsets = append(offsets, m)

	edges := make([]uint32, 0, min(m, readChunk))
	for i := uint64(0); i < m; i++ {
		v, err := tz.uint(32)
		if err != nil {
			return nil, fmt.Errorf("%s: edge %d: %w", methodReadAdjacency, i, err)
		}
		edges = append(edges, uint32(v))
	}
	if weighted {
		for i := uint64(0); i < m; i++ {
			if _, err := tz.next(); err != nil {
				return nil, fmt.Errorf("%s: weight %d: %w", methodReadAdjacency, i, err)
			}
		}
	}

	g, err := csr.New(int(n), offsets, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReadAdjacency, err)
	}
	return g, nil
}

// WriteAdjacency writes g in the AdjacencyGraph text format, one value per line.
func WriteAdjacency(w io.Writer, g *csr.Graph) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	line := func(v uint64) {
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, '\n')
		_, _ = bw.Write(buf)
	}

	_, _ = bw.WriteString(headerAdjacency + "\n")
	line(uint64(g.N))
	line(uint64(g.M))
	for _, off := range g.Offsets[:g.N] {
		line(off)
	}
	for _, v := range g.Edges {
		line(uint64(v))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteAdjacency, err)
	}
	return nil
}
