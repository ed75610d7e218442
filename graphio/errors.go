// SPDX-License-Identifier: MIT
// Package: peelmis/graphio
//
// errors.go - sentinel errors.

package graphio

import "errors"

var (
	// ErrBadHeader indicates a text input whose first token is not a known header.
	ErrBadHeader = errors.New("graphio: unrecognized header")

	// ErrTruncated indicates an input that ends before all declared values were read.
	ErrTruncated = errors.New("graphio: truncated input")

	// ErrSizeMismatch indicates a binary header whose sizes field disagrees with n and m.
	ErrSizeMismatch = errors.New("graphio: size field mismatch")

	// ErrUnknownFormat indicates a path whose extension names no supported format.
	ErrUnknownFormat = errors.New("graphio: unknown file format")
)
