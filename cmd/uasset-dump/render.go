package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func render(w io.Writer, format string, probed bool, results []result) {
	switch format {
	case outputPlain:
		renderPlain(w, probed, results)
	default:
		renderTable(w, probed, results)
	}
}

func renderTable(w io.Writer, probed bool, results []result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{"Path", "Legacy", "UE4 Version", "UE5 Version", "Licensee"}
	if probed {
		header = append(header, "Byte Order")
	}
	t.AppendHeader(append(header, "Status"))

	for _, res := range results {
		var row table.Row
		if res.Err != nil {
			row = table.Row{res.Path, "-", "-", "-", "-"}
		} else {
			row = table.Row{res.Path, res.Legacy, ue4Column(res), ue5Column(res), res.Licensee}
		}
		if probed {
			row = append(row, orderColumn(res))
		}
		t.AppendRow(append(row, statusColumn(res)))
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
}

func renderPlain(w io.Writer, probed bool, results []result) {
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(w, "%s: %s\n", res.Path, color.RedString("error: %v", res.Err))
			continue
		}

		fmt.Fprintf(w, "%s: legacy=%d ue4=%s ue5=%s licensee=%d",
			res.Path, res.Legacy, ue4Column(res), ue5Column(res), res.Licensee)
		if probed {
			fmt.Fprintf(w, " order=%s", orderColumn(res))
		}
		fmt.Fprintln(w)
	}
}

func ue4Column(res result) string {
	return fmt.Sprintf("%s (%d)", res.UE4, int32(res.UE4))
}

func ue5Column(res result) string {
	if !res.HasUE5 {
		return "-"
	}
	return fmt.Sprintf("%s (%d)", res.UE5, int32(res.UE5))
}

func orderColumn(res result) string {
	if !res.Probed {
		return "unknown"
	}
	return res.Order.String()
}

func statusColumn(res result) string {
	if res.Err != nil {
		return color.RedString("%v", res.Err)
	}
	return color.GreenString("ok")
}
