// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markdown

import (
	"regexp"
	"strings"
)

// listState tracks which list element is currently open while parsing.
// At most one list type is open at a time.
type listState int

const (
	listNone listState = iota
	listUnordered
	listOrdered
)

var orderedItemPattern = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)

// ParseBlocks scans normalized content line by line and emits HTML block
// fragments joined by newlines. Consecutive list items of the same type share
// one enclosing list element; any other line, or a blank line, closes it.
// Blocks do not nest.
func ParseBlocks(content string) string {
	var parts []string
	state := listNone

	closeList := func() {
		switch state {
		case listUnordered:
			parts = append(parts, "</ul>")
		case listOrdered:
			parts = append(parts, "</ol>")
		}
		state = listNone
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			closeList()
			continue
		}

		if after, ok := strings.CutPrefix(line, "## "); ok {
			closeList()
			parts = append(parts, "<h2>"+FormatInline(strings.TrimSpace(after))+"</h2>")
			continue
		}

		if after, ok := strings.CutPrefix(line, "### "); ok {
			closeList()
			parts = append(parts, "<h3>"+FormatInline(strings.TrimSpace(after))+"</h3>")
			continue
		}

		if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
			if state == listUnordered {
				parts = append(parts, "</ul>")
				state = listNone
			}
			if state != listOrdered {
				parts = append(parts, "<ol>")
				state = listOrdered
			}
			parts = append(parts, "<li>"+FormatInline(m[2])+"</li>")
			continue
		}

		if after, ok := strings.CutPrefix(line, "- "); ok {
			if state == listOrdered {
				parts = append(parts, "</ol>")
				state = listNone
			}
			if state != listUnordered {
				parts = append(parts, "<ul>")
				state = listUnordered
			}
			parts = append(parts, "<li>"+FormatInline(after)+"</li>")
			continue
		}

		if after, ok := strings.CutPrefix(line, ">"); ok {
			closeList()
			parts = append(parts, "<blockquote>"+FormatInline(strings.TrimSpace(after))+"</blockquote>")
			continue
		}

		closeList()
		parts = append(parts, "<p>"+FormatInline(line)+"</p>")
	}

	closeList()

	return strings.Join(parts, "\n")
}
