// Package simlog wires a structured slog.Logger through the builder,
// the transform passes and the simulation runtime, following the
// custom-level idiom of core/util.go (LevelTrace/LevelWaveform).
package simlog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	// LevelTrace carries per-expression build/lowering detail, one
	// level above Info.
	LevelTrace slog.Level = slog.LevelInfo + 1
	// LevelWaveform carries per-cycle array/FIFO state, two levels
	// above Info — the runtime's equivalent of a waveform dump.
	LevelWaveform slog.Level = slog.LevelInfo + 2
	// LevelFatalDiag marks a fatal simulation-time diagnostic;
	// sim.DefaultFailureSink logs at this level right before it exits
	// the process.
	LevelFatalDiag slog.Level = slog.LevelError + 4
)

var levelNames = map[slog.Leveler]string{
	LevelTrace:     "TRACE",
	LevelWaveform:  "WAVEFORM",
	LevelFatalDiag: "FATAL",
}

// NewLogger builds a text-handler logger recognizing the custom levels
// above, writing to os.Stderr and dropping records below minLevel.
func NewLogger(minLevel slog.Level) *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: minLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					if name, known := levelNames[lvl]; known {
						a.Value = slog.StringValue(name)
					}
				}
			}
			return a
		},
	})
	return slog.New(h)
}

// Default is the package-level logger every ambient component falls
// back to when its caller doesn't wire one in explicitly.
var Default = NewLogger(slog.LevelInfo)

// PrintSummaryTable renders title over a table with header and rows to
// stdout, mirroring core/util.go's PrintState use of go-pretty/table for
// a scenario's end-of-run summary.
func PrintSummaryTable(title string, header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetTitle(title)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		t.AppendRow(row)
	}

	fmt.Println(t.Render())
}
