package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Kcal formats a calorie amount, e.g. "2679 kcal".
func Kcal(n int) string {
	return fmt.Sprintf("%d kcal", n)
}

// SignedKcal formats a calorie adjustment with an explicit sign, e.g. "-500 kcal".
func SignedKcal(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d kcal", n)
	}
	return Kcal(n)
}

// BMIValue formats a BMI with exactly one decimal.
func BMIValue(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// NumberedList renders plan items as "1. item" lines.
func NumberedList(plan model.Plan) string {
	lines := make([]string, 0, len(plan))
	for i, item := range plan {
		lines = append(lines, fmt.Sprintf("%s %s", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), item))
	}
	return strings.Join(lines, "\n")
}

// KeyValue renders a dimmed label followed by a value, padded to width.
func KeyValue(label string, value string, width int) string {
	return fmt.Sprintf("%s %s", Dim(fmt.Sprintf("%-*s", width, label+":")), value)
}
