package ui

import (
	"fmt"

	"tripplanner/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const (
	// imageCellWidth is the content width of one grid cell.
	imageCellWidth = 34
	// maxImageColumns caps the grid at two columns.
	maxImageColumns = 2
)

// renderImageGrid lays out one cell per image URL, left to right and top to
// bottom in list order. An empty list renders nothing.
func renderImageGrid(urls []string, width int) string {
	if len(urls) == 0 {
		return ""
	}
	outer := imageCellWidth + 4 // border + padding
	cols := min(max(width/outer, 1), maxImageColumns, len(urls))

	cells := make([]string, len(urls))
	for i, u := range urls {
		content := Styles.Selected.Render(fmt.Sprintf("Image %d", i+1)) + "\n" +
			Styles.Normal.Render(textutil.TruncateMiddle(u, imageCellWidth))
		cells[i] = Styles.ImageCell.Width(imageCellWidth + 2).Render(content)
	}

	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := min(start+cols, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
