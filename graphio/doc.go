// SPDX-License-Identifier: MIT
// Package: peelmis/graphio
//
// Package graphio reads and writes CSR graphs and MIS membership vectors.
//
// What:
//
//   - ReadAdjacency / WriteAdjacency: the "AdjacencyGraph" text format
//     (header, n, m, n offsets, m edge targets, whitespace separated).
//     "WeightedAdjacencyGraph" inputs are accepted; weights are skipped.
//   - ReadBinary / WriteBinary: little-endian uint64 header n, m, sizes,
//     then n+1 uint64 offsets and m uint32 edge targets, where
//     sizes == (n+1)*8 + m*4 + 24.
//   - Load / Save: pick the format by extension (.adj, .bin) with
//     transparent .zst and .gz compression.
//   - WriteCSV / WriteList: membership exporters.
//
// Why:
//
//   - The engine operates on in-memory CSR only; this package is the thin
//     boundary to files produced by the usual graph benchmark tooling.
//
// Errors:
//
//   - ErrBadHeader, ErrTruncated, ErrSizeMismatch, ErrUnknownFormat, plus
//     csr validation errors wrapped with the reader's method tag.
package graphio
