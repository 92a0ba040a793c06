package main

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/subwatch/subwatch/internal/monitor"
)

// renderSummary formats the per-language download counts as a table.
func renderSummary(counts []monitor.LangCount) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Language", "Downloaded"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.Language, c.Count})
	}
	if len(counts) == 0 {
		t.AppendRow(table.Row{"-", 0})
	}
	return t.Render()
}
