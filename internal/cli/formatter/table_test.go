package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "HOURS"},
		[][]string{
			{"Literature Review", "40"},
			{"Writing", "25"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Literature Review")
	assert.Contains(t, lines[3], "Writing")
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTableShortRow(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}
