package patch

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a line-oriented diff from before to after. Each line is
// prefixed with "-", "+" or " ". The result is empty when the two texts are
// identical once normalized.
func Lines(beforeName, before, afterName, after string) string {
	before, after = normalize(before), normalize(after)
	if before == after {
		return ""
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("--- %s\n+++ %s\n", beforeName, afterName))
	for _, d := range lineDiffs(before, after) {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}

// Text returns the diff in diff-match-patch patch format, suitable for
// machine application with PatchFromText/PatchApply. Empty when there is no
// difference.
func Text(before, after string) string {
	before, after = normalize(before), normalize(after)
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	patches := dmp.PatchMake(before, lineDiffs(before, after))
	return dmp.PatchToText(patches)
}

// Apply applies patch text produced by Text to before and reports whether
// every hunk applied cleanly.
func Apply(before, patchText string) (string, bool) {
	dmp := diffmatchpatch.New()
	patches, err := dmp.PatchFromText(patchText)
	if err != nil {
		return before, false
	}
	out, applied := dmp.PatchApply(patches, normalize(before))
	for _, ok := range applied {
		if !ok {
			return out, false
		}
	}
	return out, true
}

// lineDiffs diffs whole lines rather than characters, which keeps YAML hunks readable.
func lineDiffs(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// normalize trims trailing whitespace from each line and converts CRLF to LF.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
