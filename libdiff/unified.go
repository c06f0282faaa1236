package libdiff

import (
	"bytes"
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const contextLines = 3

type edit struct {
	op   byte // ' ', '-', '+'
	text string
}

// Unified returns a unified diff of before and after, or the empty
// string when they are byte identical.
func Unified(before, after []byte, fromLabel, toLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}
	dmp := diffpatch.New()
	src, dst, arr := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), arr)

	edits := flatten(diffs)
	groups := changeGroups(edits)
	if len(groups) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", fromLabel)
	fmt.Fprintf(&b, "+++ %s\n", toLabel)
	oldNo, newNo := lineNumbers(edits)
	for _, g := range groups {
		lo := max(0, g[0]-contextLines)
		hi := min(len(edits)-1, g[1]+contextLines)
		var fromCount, toCount int
		for i := lo; i <= hi; i++ {
			if edits[i].op != '+' {
				fromCount++
			}
			if edits[i].op != '-' {
				toCount++
			}
		}
		fmt.Fprintf(&b, "@@ -%s +%s @@\n",
			hunkRange(oldNo[lo], fromCount),
			hunkRange(newNo[lo], toCount))
		for i := lo; i <= hi; i++ {
			b.WriteByte(edits[i].op)
			b.WriteString(edits[i].text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func flatten(diffs []diffpatch.Diff) []edit {
	var res []edit
	for _, d := range diffs {
		var op byte
		switch d.Type {
		case diffpatch.DiffDelete:
			op = '-'
		case diffpatch.DiffInsert:
			op = '+'
		default:
			op = ' '
		}
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text != "\n" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			res = append(res, edit{op: op, text: line})
		}
	}
	return res
}

// changeGroups returns [first,last] edit index pairs of change runs
// whose surrounding context would otherwise overlap, merged.
func changeGroups(edits []edit) [][2]int {
	var groups [][2]int
	for i, e := range edits {
		if e.op == ' ' {
			continue
		}
		if n := len(groups); n > 0 && i-groups[n-1][1] <= 2*contextLines {
			groups[n-1][1] = i
			continue
		}
		groups = append(groups, [2]int{i, i})
	}
	return groups
}

// lineNumbers returns the 1-based old and new file line number of each
// edit.
func lineNumbers(edits []edit) ([]int, []int) {
	oldNo := make([]int, len(edits))
	newNo := make([]int, len(edits))
	o, n := 1, 1
	for i, e := range edits {
		oldNo[i] = o
		newNo[i] = n
		if e.op != '+' {
			o++
		}
		if e.op != '-' {
			n++
		}
	}
	return oldNo, newNo
}

// hunkRange renders a start,count range the way unified diff does: a
// bare start when count is 1, start-1 when the range is empty.
func hunkRange(start, count int) string {
	switch count {
	case 1:
		return fmt.Sprintf("%d", start)
	case 0:
		return fmt.Sprintf("%d,0", start-1)
	default:
		return fmt.Sprintf("%d,%d", start, count)
	}
}
