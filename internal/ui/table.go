package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// PrintBars renders a horizontal bar chart of the given values.
func PrintBars(bars pterm.Bars, writer io.Writer) {
	if len(bars) == 0 {
		return
	}

	str, err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output chart: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
