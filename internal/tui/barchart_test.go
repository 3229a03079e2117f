package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBarChart_Empty(t *testing.T) {
	assert.Equal(t, "", RenderBarChart(nil, 20))
}

func TestRenderBarChart_ScalesToWidest(t *testing.T) {
	out := RenderBarChart([]BarRow{
		{Label: "Mon", Seconds: 28800},
		{Label: "Tue", Seconds: 14400},
		{Label: "Wed", Seconds: 0},
	}, 20)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, 20, strings.Count(lines[0], "█"))
	assert.Equal(t, 10, strings.Count(lines[1], "█"))
	assert.Equal(t, 0, strings.Count(lines[2], "█"))

	assert.Contains(t, lines[0], "8.0h")
	assert.Contains(t, lines[1], "4.0h")
	assert.Contains(t, lines[2], "0.0h")
}

func TestRenderBarChart_SmallValueGetsOneBlock(t *testing.T) {
	out := RenderBarChart([]BarRow{
		{Label: "big", Seconds: 36000},
		{Label: "tiny", Seconds: 60},
	}, 20)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 1, strings.Count(lines[1], "█"))
}

func TestRenderBarChart_PadsLabels(t *testing.T) {
	out := RenderBarChart([]BarRow{
		{Label: "Deep work", Seconds: 3600},
		{Label: "Email", Seconds: 3600},
	}, 10)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	// Both bars start at the same column.
	assert.Equal(t, strings.Index(lines[0], "█"), strings.Index(lines[1], "█"))
}
