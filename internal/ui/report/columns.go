package report

// column describes one column of a report table.
type column struct {
	Title    string
	Width    int // fixed width; 0 = flex
	MinWidth int
	MaxWidth int // 0 = no limit
}

// minColumnWidth is the minimum width for any column so "…" still fits.
const minColumnWidth = 2

// columnWidths distributes totalWidth across cols in two passes: fixed
// widths first, then the remainder split evenly across flex columns within
// their MinWidth/MaxWidth. One separator cell sits between columns.
func columnWidths(cols []column, totalWidth int) []int {
	if len(cols) == 0 {
		return []int{}
	}

	widths := make([]int, len(cols))
	flexCols := []int{}
	available := totalWidth - (len(cols) - 1)

	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			available -= col.Width
		} else {
			flexCols = append(flexCols, i)
		}
	}

	if len(flexCols) > 0 {
		perCol, remainder := 0, 0
		if available > 0 {
			perCol = available / len(flexCols)
			remainder = available % len(flexCols)
		}
		for j, i := range flexCols {
			w := perCol
			if j < remainder {
				w++
			}
			w = max(w, cols[i].MinWidth)
			if cols[i].MaxWidth > 0 && w > cols[i].MaxWidth {
				w = cols[i].MaxWidth
			}
			widths[i] = w
		}
	}

	for i := range widths {
		widths[i] = max(widths[i], minColumnWidth)
	}
	return widths
}
