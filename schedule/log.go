// Copyright ©2026 The MHGo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schedule

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// IterationRecord is one row of the iteration log stream.
type IterationRecord struct {
	Iteration    int
	IncumbentObj float64
	ObjOld       float64
	ObjNew       float64
	Elapsed      time.Duration
	Method       string
	Info         string
}

// MethodStatsRow is one row of the method-statistics table in the summary
// log stream.
type MethodStatsRow struct {
	Name             string
	Applications     int
	Successes        int
	SuccessRate      float64
	TotalGain        float64
	AvgGain          float64
	ShareOfSuccesses float64
	NettoTime        time.Duration
	NettoPct         float64
	BruttoTime       time.Duration
	BruttoPct        float64
}

// MainResults is the main-results block of the summary log stream.
type MainResults struct {
	BestObj         float64
	BestIteration   int
	TotalIterations int
	BestTime        time.Duration
	TotalTime       time.Duration
	// TotalObjGain is the sum of every method's accumulated ObjGain.
	TotalObjGain float64
	// BestMethodGain is the largest single method's accumulated ObjGain.
	BestMethodGain float64
}

// Logger is the Scheduler's logging surface: two textual streams, an
// iteration log and a summary log, with a stable field ordering across
// releases per spec §6.
type Logger interface {
	// LogIteration is called for every iteration line the filtering
	// policy in ShouldLogIteration selects.
	LogIteration(rec IterationRecord)
	// LogSummary emits the method-statistics table and main-results
	// block. The Scheduler and the drivers never call it themselves; a
	// caller passes it the output of Scheduler.Summary after a run.
	LogSummary(rows []MethodStatsRow, main MainResults)
}

// TextLogger writes column-formatted output to Writer as the run
// progresses, grounded on gonum's optimize.Printer: a heading is reprinted
// every HeadingInterval data rows. Fields are separated by a single tab;
// columns are not padded to a common width.
type TextLogger struct {
	Writer          io.Writer
	HeadingInterval int

	linesSinceHeading int
}

// NewTextLogger returns a TextLogger writing to os.Stdout with a heading
// reprinted every 30 rows.
func NewTextLogger() *TextLogger {
	return &TextLogger{Writer: os.Stdout, HeadingInterval: 30}
}

var iterationHeadings = []string{"Iter", "Incumbent", "ObjOld", "ObjNew", "Time", "Method", "Info"}

func (l *TextLogger) LogIteration(rec IterationRecord) {
	values := []string{
		fmt.Sprintf("%d", rec.Iteration),
		fmt.Sprintf("%g", rec.IncumbentObj),
		fmt.Sprintf("%g", rec.ObjOld),
		fmt.Sprintf("%g", rec.ObjNew),
		rec.Elapsed.String(),
		rec.Method,
		rec.Info,
	}
	if l.linesSinceHeading >= l.HeadingInterval || l.linesSinceHeading == 0 {
		l.writeRow(iterationHeadings)
		l.linesSinceHeading = 0
	}
	l.writeRow(values)
	l.linesSinceHeading++
}

func (l *TextLogger) LogSummary(rows []MethodStatsRow, main MainResults) {
	headings := []string{"Method", "Appl", "Succ", "SuccRate", "TotGain", "AvgGain", "ShareSucc", "Netto", "Netto%", "Brutto", "Brutto%"}
	l.writeRow(headings)
	for _, r := range rows {
		l.writeRow([]string{
			r.Name,
			fmt.Sprintf("%d", r.Applications),
			fmt.Sprintf("%d", r.Successes),
			formatRatio(r.SuccessRate),
			fmt.Sprintf("%g", r.TotalGain),
			formatRatio(r.AvgGain),
			formatRatio(r.ShareOfSuccesses),
			r.NettoTime.String(),
			formatRatio(r.NettoPct),
			r.BruttoTime.String(),
			formatRatio(r.BruttoPct),
		})
	}
	fmt.Fprintf(l.Writer, "\nbest %g at iteration %d (%s), %d iterations total (%s), total gain %g (best method %g)\n",
		main.BestObj, main.BestIteration, main.BestTime, main.TotalIterations, main.TotalTime,
		main.TotalObjGain, main.BestMethodGain)
}

func formatRatio(v float64) string {
	if v != v { // NaN
		return "NaN"
	}
	return fmt.Sprintf("%g", v)
}

func (l *TextLogger) writeRow(fields []string) {
	fmt.Fprintln(l.Writer, padFields(fields))
}

func padFields(fields []string) string {
	return strings.Join(fields, "\t")
}

// ShouldLogIteration implements the filtering policy from spec §4.1: a
// line is emitted if forced, if a new incumbent was found and lnewinc is
// set, or based on lfreq (lfreq>0: every lfreq-th iteration; lfreq<0: at
// iterations whose log10 has fractional part ~0, log10(2), or log10(5),
// i.e. 1, 2, 5, 10, 20, 50, 100, ...).
func ShouldLogIteration(iteration int, newIncumbent, forced bool, params Parameters) bool {
	if forced {
		return true
	}
	if newIncumbent && params.LNewInc {
		return true
	}
	switch {
	case params.LFreq > 0:
		return iteration%params.LFreq == 0
	case params.LFreq < 0:
		return isLogarithmicIteration(iteration)
	default:
		return false
	}
}

func isLogarithmicIteration(iteration int) bool {
	if iteration <= 0 {
		return false
	}
	for _, lead := range [3]int{1, 2, 5} {
		n := lead
		for n <= iteration {
			if n == iteration {
				return true
			}
			n *= 10
		}
	}
	return false
}
