package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/metailurini/txlog"
)

var progressMessage = color.GreenString("==>")

func printAppend(w io.Writer, l *txlog.Log[string], offset uint64, value string) {
	fmt.Fprintf(w, "%v Append offset=%d value=%q length=%d max-level=%d\n",
		progressMessage, offset, value, l.Len(), l.MaxLevel())
	printLevels(w, l)
}

func printLevels(w io.Writer, l *txlog.Log[string]) {
	table := uitable.New()
	table.Separator = "  "
	table.MaxColWidth = 80
	table.Wrap = true
	table.AddRow(color.CyanString("LEVEL"), color.CyanString("OFFSETS"))

	lanes := l.Levels()
	for level := len(lanes) - 1; level >= 0; level-- {
		offsets := make([]string, len(lanes[level]))
		for i, o := range lanes[level] {
			offsets[i] = fmt.Sprint(o)
		}
		table.AddRow(level, strings.Join(offsets, " -> "))
	}
	fmt.Fprintln(w, table)
}

func printFind(w io.Writer, offset uint64, value string, found bool) {
	if !found {
		fmt.Fprintf(w, "%v Find offset=%d: %s\n", progressMessage, offset, color.YellowString("not found"))
		return
	}
	fmt.Fprintf(w, "%v Find offset=%d: %q\n", progressMessage, offset, value)
}

func printStats(w io.Writer, s txlog.Stats) {
	fmt.Fprintf(w, "%v Stats:\n", progressMessage)
	table := uitable.New()
	table.Separator = " "
	table.RightAlign(0)
	table.AddRow("appends:", s.Appends)
	table.AddRow("lookups:", s.Lookups)
	table.AddRow("hits:", s.Hits)
	table.AddRow("hops/lookup:", fmt.Sprintf("%.2f", s.HopsPerLookup()))
	for i, n := range s.LevelCounts {
		table.AddRow(fmt.Sprintf("height %d:", i+1), n)
	}
	fmt.Fprintln(w, table)
}
