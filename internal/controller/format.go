package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/blackbox/internal/model"
)

func formatPositions(positions []m.Position) string {
	if len(positions) == 0 {
		return "[]"
	}

	parts := make([]string, 0, len(positions))
	for _, p := range positions {
		parts = append(parts, fmt.Sprintf("(%d,%d)", p.Line, p.Column))
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

func countSkipped(verdicts []Verdict) int {
	skipped := 0

	for _, v := range verdicts {
		if v.Status == m.Skip {
			skipped++
		}
	}

	return skipped
}
