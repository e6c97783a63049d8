package render

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/dshills/nyota/internal/schema"
)

const (
	ruleWidth  = 60
	labelWidth = 40
)

type textRenderer struct {
	color bool
}

func (r *textRenderer) Render(report *schema.Report) ([]byte, error) {
	barColor := color.New(color.FgCyan)
	head := color.New(color.Bold)
	if r.color {
		barColor.EnableColor()
		head.EnableColor()
	} else {
		barColor.DisableColor()
		head.DisableColor()
	}

	var buf bytes.Buffer
	rule := repeat("=", ruleWidth)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, head.Sprintf("NYOTA PERSONALITY - %s", strings.ToUpper(report.Input.Instrument)))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "%d responses loaded\n", report.Input.ResponseCount)

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, head.Sprint("SCORES PER AXIS (out of 100)"))
	fmt.Fprintln(&buf, repeat("-", ruleWidth))
	for _, s := range report.Scores {
		fmt.Fprintf(&buf, "%s %6.2f %s\n", padDots(s.Axis, labelWidth), s.Score, barColor.Sprint(Bar(s.Score)))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Mean %.2f | strongest: %s | weakest: %s\n",
		report.Summary.Mean, report.Summary.Strongest, report.Summary.Weakest)
	fmt.Fprintln(&buf, rule)
	return buf.Bytes(), nil
}

// padDots left-aligns s and fills it with dots up to width runes.
func padDots(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + repeat(".", width-n)
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
