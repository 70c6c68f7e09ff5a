// Package report prints pipeline results the way the console front end shows
// them.
package report

import (
	"fmt"
	"io"
	"strings"

	"Linecode/pkg/linecode"
	"Linecode/pkg/palindrome"
	"Linecode/pkg/pipeline"

	"github.com/fatih/color"
)

type Printer struct {
	Color      bool
	ShowLevels bool
	ShowStats  bool
}

type palette struct {
	high, low, idle, highlight, label *color.Color
}

func (p Printer) palette() palette {
	pal := palette{
		high:      color.New(color.FgGreen),
		low:       color.New(color.FgRed),
		idle:      color.New(color.FgHiBlack),
		highlight: color.New(color.FgCyan, color.Bold),
		label:     color.New(color.Bold),
	}
	for _, c := range []*color.Color{pal.high, pal.low, pal.idle, pal.highlight, pal.label} {
		if p.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return pal
}

func (p Printer) Print(w io.Writer, res *pipeline.Result) error {
	pal := p.palette()

	var sb strings.Builder
	line := func(label, value string) {
		sb.WriteString(pal.label.Sprintf("%-20s", label+":"))
		sb.WriteString(value)
		sb.WriteByte('\n')
	}

	line("Signal", res.Title)
	line("Original Data", highlightPalindrome(res.Original, pal.highlight))
	if res.Scrambled != "" {
		line("Scrambled Data", res.Scrambled)
	}
	line("Longest Palindrome", res.Palindrome)

	if p.ShowLevels {
		line("Levels", formatLevels(res.Levels, res.Scheme.LevelsPerSymbol(), pal))
	}
	if p.ShowStats {
		st := res.Stats
		line("Transitions", fmt.Sprint(st.Transitions))
		line("DC Sum", fmt.Sprint(st.DCSum))
		line("Longest Flat Run", fmt.Sprint(st.LongestFlatRun))
		if res.Scheme == linecode.AMI {
			line("Bipolar Violations", fmt.Sprint(st.Violations))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func highlightPalindrome(s string, c *color.Color) string {
	start, length := palindrome.LongestSpan(s)
	runes := []rune(s)
	return string(runes[:start]) + c.Sprint(string(runes[start:start+length])) + string(runes[start+length:])
}

// formatLevels writes +, 0 and - glyphs, one group per input symbol.
func formatLevels(levels []float64, perSymbol int, pal palette) string {
	if perSymbol <= 0 {
		perSymbol = 1
	}
	var sb strings.Builder
	for i, v := range levels {
		if i > 0 && i%perSymbol == 0 {
			sb.WriteByte(' ')
		}
		switch {
		case v > 0:
			sb.WriteString(pal.high.Sprint("+"))
		case v < 0:
			sb.WriteString(pal.low.Sprint("-"))
		default:
			sb.WriteString(pal.idle.Sprint("0"))
		}
	}
	return sb.String()
}
