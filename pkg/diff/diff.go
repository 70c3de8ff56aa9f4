// Package diff renders line-oriented unified diffs.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."

	// ContextLines is the number of unchanged lines kept around each change.
	ContextLines = 3
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

type lineOp struct {
	kind diffmatchpatch.Operation
	text string
}

// GenerateUnifiedDiff compares expected and actual line by line and returns
// a unified diff with ContextLines of context. It returns an empty string
// when the content is identical and truncates output beyond 10,000 lines.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	out, _ := generate(expected, actual, expectedLabel, actualLabel)
	return out
}

// YAML renders before and after as YAML and diffs the renderings.
func YAML(before, after interface{}, beforeLabel, afterLabel string) (string, Stats, error) {
	left, err := yaml.Marshal(before)
	if err != nil {
		return "", Stats{}, fmt.Errorf("render %s: %w", beforeLabel, err)
	}
	right, err := yaml.Marshal(after)
	if err != nil {
		return "", Stats{}, fmt.Errorf("render %s: %w", afterLabel, err)
	}
	out, stats := generate(left, right, beforeLabel, afterLabel)
	return out, stats, nil
}

func generate(expected, actual []byte, expectedLabel, actualLabel string) (string, Stats) {
	if bytes.Equal(expected, actual) {
		return "", Stats{}
	}

	ops := lineDiff(string(expected), string(actual))

	var stats Stats
	for _, op := range ops {
		switch op.kind {
		case diffmatchpatch.DiffInsert:
			stats.Added++
		case diffmatchpatch.DiffDelete:
			stats.Removed++
		}
	}
	if !stats.Changed() {
		return "", stats
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)

	for _, h := range hunks(ops) {
		writeHunk(&buf, ops, h)
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n", stats
	}

	return result, stats
}

// lineDiff diffs whole lines rather than characters.
func lineDiff(expected, actual string) []lineOp {
	dmp := diffmatchpatch.New()
	left, right, lineArray := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffMain(left, right, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var ops []lineOp
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			ops = append(ops, lineOp{kind: d.Type, text: line})
		}
	}
	return ops
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type span struct {
	start, end int
}

// hunks groups changed ops with their surrounding context; changes closer
// than twice the context share one hunk.
func hunks(ops []lineOp) []span {
	var out []span
	for i, op := range ops {
		if op.kind == diffmatchpatch.DiffEqual {
			continue
		}
		start := i - ContextLines
		if start < 0 {
			start = 0
		}
		end := i + ContextLines + 1
		if end > len(ops) {
			end = len(ops)
		}
		if n := len(out); n > 0 && start <= out[n-1].end {
			if end > out[n-1].end {
				out[n-1].end = end
			}
			continue
		}
		out = append(out, span{start: start, end: end})
	}
	return out
}

func writeHunk(buf *bytes.Buffer, ops []lineOp, h span) {
	oldStart, newStart := 1, 1
	for _, op := range ops[:h.start] {
		if op.kind != diffmatchpatch.DiffInsert {
			oldStart++
		}
		if op.kind != diffmatchpatch.DiffDelete {
			newStart++
		}
	}

	oldCount, newCount := 0, 0
	for _, op := range ops[h.start:h.end] {
		if op.kind != diffmatchpatch.DiffInsert {
			oldCount++
		}
		if op.kind != diffmatchpatch.DiffDelete {
			newCount++
		}
	}

	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, op := range ops[h.start:h.end] {
		switch op.kind {
		case diffmatchpatch.DiffEqual:
			buf.WriteString(" ")
		case diffmatchpatch.DiffDelete:
			buf.WriteString("-")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("+")
		}
		buf.WriteString(op.text)
		buf.WriteString("\n")
	}
}
