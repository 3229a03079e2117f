package tui

import (
	"fmt"
	"strings"

	"github.com/mikevive/farhost/internal/domain"
)

// BarRow is one labeled value in an ASCII bar chart.
type BarRow struct {
	Label   string
	Seconds int64
}

// RenderBarChart renders rows as horizontal block bars scaled to
// barWidth. Labels are right-padded to the widest label; each bar ends
// with the value in decimal hours. A zero value renders an empty bar, a
// non-zero value always gets at least one block.
func RenderBarChart(rows []BarRow, barWidth int) string {
	if len(rows) == 0 {
		return ""
	}
	if barWidth < 1 {
		barWidth = 1
	}

	labelWidth := 0
	var maxSeconds int64
	for _, r := range rows {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
		if r.Seconds > maxSeconds {
			maxSeconds = r.Seconds
		}
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		blocks := 0
		if maxSeconds > 0 && r.Seconds > 0 {
			blocks = int(r.Seconds * int64(barWidth) / maxSeconds)
			if blocks == 0 {
				blocks = 1
			}
		}
		fmt.Fprintf(&b, "%-*s %s%s %s",
			labelWidth, r.Label,
			strings.Repeat("█", blocks),
			strings.Repeat(" ", barWidth-blocks),
			domain.FormatHours(r.Seconds),
		)
	}
	return b.String()
}
