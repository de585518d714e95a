package formatter

import (
	"fmt"
	"strings"

	"github.com/mouazan/thesisflow/internal/contract"
	"github.com/mouazan/thesisflow/internal/domain"
)

// FormatPlan formats a PlanResult into the post-synthesis summary screen.
func FormatPlan(res *contract.PlanResult) string {
	var b strings.Builder

	p := res.Project

	b.WriteString(Header("Thesis Plan"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", Bold(p.Topic))
	fmt.Fprintf(&b, "  %s → %s\n",
		p.StartDate.Format(domain.DateLayout),
		p.Deadline.Format(domain.DateLayout))
	fmt.Fprintf(&b, "  %d days, %d working days, %s productive\n",
		res.TotalDays, res.WorkingDays, FormatHours(res.ProductiveHours))
	b.WriteString("\n")

	if res.UsedFallback {
		b.WriteString(StyleYellow.Render("  Generated from the built-in template (AI unavailable).") + "\n")
		if res.FailureReason != "" {
			fmt.Fprintf(&b, "  %s\n", Dim("Reason: "+res.FailureReason))
		}
		b.WriteString("\n")
	}

	headers := []string{"PHASE", "START", "END", "HOURS", "TASKS"}
	rows := make([][]string, 0, len(res.Plan.Phases))
	for i := range res.Plan.Phases {
		ph := &res.Plan.Phases[i]
		rows = append(rows, []string{
			Bold(ph.Name),
			ph.StartDate.Format(domain.DateLayout),
			ph.EndDate.Format(domain.DateLayout),
			fmt.Sprintf("%d", ph.EstimatedHours),
			fmt.Sprintf("%d", len(ph.Tasks)),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if len(res.Plan.Milestones) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Milestones"))
		b.WriteString("\n")
		for _, m := range res.Plan.Milestones {
			fmt.Fprintf(&b, "  %s  %s\n",
				Dim(m.TargetDate.Format(domain.DateLayout)),
				m.Name)
		}
	}

	if len(res.AdjustmentsMade) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Adjustments"))
		b.WriteString("\n")
		for _, a := range res.AdjustmentsMade {
			fmt.Fprintf(&b, "  • %s\n", a)
		}
	}

	return b.String()
}
