// SPDX-License-Identifier: MIT
// Package: peelmis/graphio
//
// export.go - MIS membership exporters.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const (
	methodWriteCSV  = "WriteCSV"
	methodWriteList = "WriteList"
)

// ExportFormat selects a membership exporter.
type ExportFormat string

const (
	// ExportCSV writes "<count>,<id>,<id>,...".
	ExportCSV ExportFormat = "csv"
	// ExportList writes "# MIS size: <count>" then one id per line.
	ExportList ExportFormat = "list"
)

// WriteCSV writes the members of inSet as "<count>,<id>,<id>,..." with ids
// ascending and no trailing newline.
func WriteCSV(w io.Writer, inSet []bool) error {
	bw := bufio.NewWriter(w)
	buf := strconv.AppendInt(nil, int64(count(inSet)), 10)
	for v, in := range inSet {
		if !in {
			continue
		}
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(v), 10)
		if len(buf) >= 4096 {
			_, _ = bw.Write(buf)
			buf = buf[:0]
		}
	}
	_, _ = bw.Write(buf)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteCSV, err)
	}
	return nil
}

// WriteList writes "# MIS size: <count>" followed by one member id per line.
func WriteList(w io.Writer, inSet []bool) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "# MIS size: %d\n", count(inSet))
	var buf []byte
	for v, in := range inSet {
		if !in {
			continue
		}
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		_, _ = bw.Write(buf)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteList, err)
	}
	return nil
}

// Export dispatches on format.
func Export(w io.Writer, format ExportFormat, inSet []bool) error {
	switch format {
	case ExportCSV:
		return WriteCSV(w, inSet)
	case ExportList:
		return WriteList(w, inSet)
	}
	return fmt.Errorf("Export: %q: %w", format, ErrUnknownFormat)
}

func count(inSet []bool) int {
	c := 0
	for _, in := range inSet {
		if in {
			c++
		}
	}
	return c
}
