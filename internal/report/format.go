package report

import (
	"fmt"
	"strconv"
)

// formatMean returns a two-decimal string for averages.
func formatMean(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatCount(value int) string {
	return strconv.Itoa(value)
}

// truncateLabel shortens chart axis labels.
func truncateLabel(label string, limit int) string {
	runes := []rune(label)
	if len(runes) <= limit {
		return label
	}
	return string(runes[:limit-1]) + "…"
}

// hopLabel renders a hop count as an axis label.
func hopLabel(hops int) string {
	if hops == 1 {
		return "1 hop"
	}
	return strconv.Itoa(hops) + " hops"
}

// answerTypeLabel names the empty answer-type group.
func answerTypeLabel(answerType string) string {
	if answerType == "" {
		return "(none)"
	}
	return answerType
}
