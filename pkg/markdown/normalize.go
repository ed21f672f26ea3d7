// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package markdown renders the loosely structured markdown produced by the
// aggregator agent into a self-contained HTML report document.
//
// The content frequently arrives as a single unbroken line, so rendering is a
// three stage rewrite: a normalization pass that restores block boundaries, a
// line oriented block parser, and an ordered inline substitution pass.
package markdown

import (
	"regexp"
	"strings"
)

var (
	headerBoundary   = regexp.MustCompile(`\s*(#{2,3})\s+`)
	bulletBoundary   = regexp.MustCompile(`\s+(-\s+\*\*)`)
	numberedBoundary = regexp.MustCompile(`\s+(\d+\.\s+\*\*)`)
	quoteBoundary    = regexp.MustCompile(`\s+(>)`)
)

// Normalize inserts line breaks before block-starting markers so content that
// arrives on a single line parses as one block per line. The substitutions run
// in a fixed order; later patterns operate on the output of earlier ones.
func Normalize(content string) string {
	content = headerBoundary.ReplaceAllString(content, "\n\n${1} ")
	content = bulletBoundary.ReplaceAllString(content, "\n${1}")
	content = numberedBoundary.ReplaceAllString(content, "\n\n${1}")
	content = quoteBoundary.ReplaceAllString(content, "\n\n${1}")

	return strings.TrimSpace(content)
}
