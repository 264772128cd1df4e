package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/urltop/internal/model"
)

const historyTimeLayout = "2006-01-02 15:04:05"

var historyHeaderStyle = lipgloss.NewStyle().Bold(true)

// WriteHistory writes archived runs as an aligned table. The header row is
// styled when w is a terminal and NO_COLOR is unset.
func WriteHistory(w io.Writer, runs []model.Run) error {
	if len(runs) == 0 {
		if _, err := fmt.Fprintln(w, "no recorded runs"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	headers := []string{"ID", "Started", "Source", "Top", "URLs", "Domains", "Paths"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			strconv.FormatInt(run.ID, 10),
			run.StartedAt.In(time.Local).Format(historyTimeLayout),
			run.Source,
			strconv.Itoa(run.Limit),
			strconv.Itoa(run.Report.TotalURLs),
			strconv.Itoa(run.Report.DomainCount),
			strconv.Itoa(run.Report.PathCount),
		})
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true}
	lines := formatTable(headers, rows, rightAlign)
	if shouldStyle(w) {
		lines[0] = historyHeaderStyle.Render(lines[0])
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func shouldStyle(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths, rightAlignCols))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := runewidth.StringWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := strings.Repeat(" ", width-valueWidth)
	if rightAlign {
		return padding + value
	}
	return value + padding
}
