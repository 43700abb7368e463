package scenario

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Layout of evaluated scenarios on screen, in pixels.
const (
	RowHeight   = 20
	ColumnWidth = 60
)

// Cell is one piece of text to draw, positioned relative to the top-left of the display.
type Cell struct {
	X, Y int
	Text string
	line int
	col  int
}

// Cells lays out an evaluated Scenario: its title first, then every Row. Numbers sit in columns of ColumnWidth with
// the label following them; a quaternion's label goes after its fourth column, a vector's after its third. Matrices
// put their label on a line of its own, above their four rows.
func Cells(res *Result) []Cell {

	cells := []Cell{}
	line := 0

	add := func(col int, text string) {
		cells = append(cells, Cell{
			X:    col * ColumnWidth,
			Y:    line * RowHeight,
			Text: text,
			line: line,
			col:  col,
		})
	}

	add(0, res.Scenario.DisplayTitle())
	line++

	for _, row := range res.Rows {

		lines := row.Value.Lines()

		if row.Value.Kind == KindMatrix {
			add(0, row.Label)
			line++
			for _, numbers := range lines {
				for i, n := range numbers {
					add(i, formatNumber(n))
				}
				line++
			}
			continue
		}

		numbers := lines[0]
		for i, n := range numbers {
			add(i, formatNumber(n))
		}

		labelCol := len(numbers)
		if row.Value.Kind == KindScalar {
			labelCol = 4
		}
		add(labelCol, row.Label)
		line++

	}

	return cells

}

func formatNumber(n float32) string {
	return fmt.Sprintf("%.02f", n)
}

// Format writes evaluated scenarios as plain text, laid out like Cells with tab-aligned columns.
func Format(w io.Writer, results []*Result) error {

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, res := range results {

		if i > 0 {
			fmt.Fprintln(tw)
		}

		cells := Cells(res)

		for start := 0; start < len(cells); {

			end := start
			for end < len(cells) && cells[end].line == cells[start].line {
				end++
			}

			col := 0
			for _, c := range cells[start:end] {
				for ; col < c.col; col++ {
					fmt.Fprint(tw, "\t")
				}
				fmt.Fprint(tw, c.Text)
			}
			fmt.Fprintln(tw)

			start = end

		}

	}

	return tw.Flush()

}
