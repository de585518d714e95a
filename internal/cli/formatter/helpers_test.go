package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "5h", FormatHours(5))
	assert.Equal(t, "2.5h", FormatHours(2.5))
	assert.Equal(t, "0h", FormatHours(0))
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		target time.Time
		want   string
	}{
		{now, "Today"},
		{now.AddDate(0, 0, 1), "Tomorrow"},
		{now.AddDate(0, 0, -1), "Yesterday"},
		{now.AddDate(0, 0, 5), "In 5d"},
		{now.AddDate(0, 0, 21), "In 3w"},
		{now.AddDate(0, 0, 90), "In 3mo"},
		{now.AddDate(0, 0, -5), "5d ago"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RelativeDateFrom(tc.target, now))
	}
}

func TestRenderBoxContainsContent(t *testing.T) {
	out := RenderBox("Status", "hello world")
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "hello world")
}
