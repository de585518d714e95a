package formatter

import (
	"fmt"
	"strings"

	"github.com/mouazan/thesisflow/internal/contract"
)

// FormatToday formats a TodayResult into the daily task list.
func FormatToday(res *contract.TodayResult) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Tasks for %s", res.Date.Format("Mon, Jan 2"))))
	b.WriteString("\n")

	if len(res.Tasks) == 0 {
		b.WriteString(Dim("  Nothing scheduled. Enjoy the day off.") + "\n")
		return b.String()
	}

	headers := []string{"", "ID", "TASK", "PHASE", "HOURS", "DUE"}
	rows := make([][]string, 0, len(res.Tasks))
	for _, t := range res.Tasks {
		mark := Dim("○")
		title := t.Title
		if t.Completed {
			mark = StyleGreen.Render("●")
			title = Dim(title)
		}
		due := Dim("--")
		if t.DueDate != nil {
			due = RelativeDateStyled(*t.DueDate, res.Date)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", mark, PriorityIndicator(t.Priority)),
			Dim(shortID(t.TaskID)),
			title,
			Dim(t.PhaseName),
			FormatHours(t.EstimatedHours),
			due,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	fmt.Fprintf(&b, "  Total: %s\n", Bold(FormatHours(res.TotalHours)))

	if res.Insight != "" {
		b.WriteString("\n")
		b.WriteString(StyleBlue.Render("  "+res.Insight) + "\n")
	}

	return b.String()
}

// shortID truncates a UUID to its first segment for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
