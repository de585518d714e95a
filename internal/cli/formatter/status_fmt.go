package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mouazan/thesisflow/internal/contract"
	"github.com/mouazan/thesisflow/internal/domain"
)

const statusProgressBarWidth = 10

// FormatStatus formats a StatusResult into a styled progress dashboard.
func FormatStatus(res *contract.StatusResult, now time.Time) string {
	var b strings.Builder

	p := res.Project

	fmt.Fprintf(&b, "%s\n", Bold(p.Topic))
	fmt.Fprintf(&b, "%s  %s\n",
		Dim("Deadline"),
		fmt.Sprintf("%s (%s)", p.Deadline.Format(domain.DateLayout),
			RelativeDateStyled(p.Deadline, now)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Progress  %s\n", RenderProgress(res.ProgressPct/100, statusProgressBarWidth))
	fmt.Fprintf(&b, "Tasks     %d of %d done\n", res.CompletedTasks, res.TotalTasks)
	fmt.Fprintf(&b, "Hours     %s of %s logged as planned work\n",
		FormatHours(res.CompletedHours), FormatHours(res.TotalHours))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%d days remain, %d of them working days.\n",
		res.DaysRemaining, res.WorkingDaysRemaining)
	if res.RequiredDailyHours > 0 {
		line := fmt.Sprintf("Finishing on time needs %s per working day.",
			FormatHours(res.RequiredDailyHours))
		if res.RequiredDailyHours > p.DailyHours {
			b.WriteString(StyleRed.Render(line) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	if res.OverloadedFinalDay {
		b.WriteString(StyleYellow.Render(fmt.Sprintf(
			"WARNING: the final working day carries %s against a %s budget.",
			FormatHours(res.FinalDayHours), FormatHours(p.DailyHours))) + "\n")
	}

	if len(res.Milestones) > 0 {
		b.WriteString("\n")
		headers := []string{"MILESTONE", "TARGET", "STATUS"}
		rows := make([][]string, 0, len(res.Milestones))
		for _, m := range res.Milestones {
			status := Dim("pending")
			switch {
			case m.Completed:
				status = StyleGreen.Render("done")
			case m.DaysLeft < 0:
				status = StyleRed.Render("overdue")
			case res.NextMilestone != nil && m.MilestoneID == res.NextMilestone.MilestoneID:
				status = StyleYellow.Render("next")
			}
			rows = append(rows, []string{
				m.Name,
				fmt.Sprintf("%s %s", m.TargetDate.Format(domain.DateLayout),
					Dim(RelativeDateFrom(m.TargetDate, now))),
				status,
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if p.UsedFallback {
		b.WriteString("\n")
		b.WriteString(Dim("Plan built from the built-in template.") + "\n")
	}

	return RenderBox("Status", strings.TrimRight(b.String(), "\n"))
}
