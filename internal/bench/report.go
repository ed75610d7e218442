// SPDX-License-Identifier: MIT
// Package: peelmis/internal/bench
//
// report.go - text rendering.

package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"
)

// seconds renders d the way the timing scripts parse it.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}

// WriteText writes the report block:
//
//	### Application: MIS
//	### Graph: ...
//	## Counter initialization time = <s>
//	## round = <i> time = <s>
//	### Running Time: <mean s>
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) { _, _ = fmt.Fprintf(bw, format+"\n", args...) }

	verify := 0
	if r.Verified {
		verify = 1
	}
	p("### ===================================================================")
	p("### Application: MIS")
	p("### Graph: %s", r.Graph)
	if r.Label != "" {
		p("### Label: %s", r.Label)
	}
	p("### Run ID: %s", r.RunID)
	p("### Threads: %d", r.Workers)
	p("### n: %d", r.N)
	p("### m: %d", r.M)
	p("### Counter: %s", r.Counter)
	p("### Params: -verify = %d", verify)
	if r.Host.CPUModel != "" {
		p("### CPU: %s (%d logical)", r.Host.CPUModel, r.Host.LogicalCPUs)
	}
	p("## Counter initialization time = %s", seconds(r.InitElapsed))
	for i, d := range r.RoundTimes {
		p("## round = %d time = %s", i+1, seconds(d))
	}
	p("### Running Time: %s", seconds(r.Mean))
	p("### MIS size: %d", r.Size)
	p("### Rounds: %d", r.Rounds)
	if r.Recoveries > 0 {
		p("### Recoveries: %d", r.Recoveries)
	}
	if r.Verified {
		status := "ok"
		if r.VerifyErr != nil {
			status = r.VerifyErr.Error()
		}
		p("### Verify: %s", status)
		p("### Conflicts: %d", r.Conflicts)
	}
	return bw.Flush()
}
