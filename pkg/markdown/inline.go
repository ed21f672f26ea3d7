// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markdown

import (
	"regexp"
	"strings"
)

var (
	imageURLPattern = regexp.MustCompile(
		`(?i)(https?://[^\s<>"']+\.(?:png|jpg|jpeg|gif|bmp|webp|svg))`)
	bareURLPattern     = regexp.MustCompile(`https?://[^\s<>"']+`)
	mathInlinePattern  = regexp.MustCompile(`\\\((.+?)\\\)`)
	mathDisplayPattern = regexp.MustCompile(`\\\[(.+?)\\\]`)
	dollarBlockPattern = regexp.MustCompile(`\$\$(.+?)\$\$`)
	boldPattern        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern      = regexp.MustCompile(`\*([^*]+)\*`)
	codePattern        = regexp.MustCompile("`([^`]+)`")
)

// FormatInline applies the inline substitution rules to a single line of block
// text. The rules form a fixed rewrite pipeline and must not be reordered:
// the bare URL rule must not re-wrap URLs the image rule already emitted, the
// single-dollar rule must not split delimiters the double-dollar rule owns,
// and italic must only see the asterisks bold left behind.
func FormatInline(text string) string {
	// Image URLs become embedded images.
	text = imageURLPattern.ReplaceAllString(text,
		`<img src="${1}" alt="Image" class="embedded-image">`)

	// Any remaining bare URL is treated as an image as well.
	text = replaceBareURLs(text)

	// LaTeX delimiters, then dollar-sign math.
	text = mathInlinePattern.ReplaceAllString(text,
		`<span class="math-inline">\(${1}\)</span>`)
	text = mathDisplayPattern.ReplaceAllString(text,
		`<div class="math-display">\[${1}\]</div>`)
	text = replaceInlineDollarMath(text)
	text = dollarBlockPattern.ReplaceAllString(text,
		`<div class="math-display">\[${1}\]</div>`)

	text = boldPattern.ReplaceAllString(text, "<strong>${1}</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>${1}</em>")
	text = codePattern.ReplaceAllString(text, "<code>${1}</code>")

	text = strings.ReplaceAll(text, "σ", "&sigma;")

	return text
}

// replaceBareURLs wraps every remaining http(s) URL in an <img> tag unless it
// is already quoted or follows an equals sign. RE2 has no lookaround, so the
// boundary conditions are checked directly: a match starting right after a
// quote or '=' is skipped, and a match ending right before a quote gives up
// its final character, matching the backtracking of the original pattern.
func replaceBareURLs(text string) string {
	matches := bareURLPattern.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}

	var sb strings.Builder
	last := 0

	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 {
			switch text[start-1] {
			case '"', '\'', '=':
				continue
			}
		}
		if end < len(text) && (text[end] == '"' || text[end] == '\'') {
			end--
			// The shortened match still needs one character after the scheme.
			sep := strings.Index(text[start:end], "://")
			if sep < 0 || end <= start+sep+len("://") {
				continue
			}
		}

		sb.WriteString(text[last:start])
		sb.WriteString(`<img src="`)
		sb.WriteString(text[start:end])
		sb.WriteString(`" alt="Embedded content" class="embedded-image">`)
		last = end
	}

	sb.WriteString(text[last:])
	return sb.String()
}

// replaceInlineDollarMath rewrites $...$ spans as inline math. The opening
// dollar must not be escaped and the closing dollar must not be doubled, so
// $$...$$ display spans are left for the next rule. Scans left to right the
// way the original lookaround pattern does.
func replaceInlineDollarMath(text string) string {
	var sb strings.Builder
	last := 0

	for i := 0; i < len(text); i++ {
		if text[i] != '$' {
			continue
		}
		if i > 0 && text[i-1] == '\\' {
			continue
		}

		// Locate the closing dollar; the span may not contain one itself.
		j := strings.IndexByte(text[i+1:], '$')
		if j < 0 {
			break
		}
		j += i + 1
		if j == i+1 {
			continue
		}
		if j+1 < len(text) && text[j+1] == '$' {
			continue
		}

		sb.WriteString(text[last:i])
		sb.WriteString(`<span class="math-inline">\(`)
		sb.WriteString(text[i+1 : j])
		sb.WriteString(`\)</span>`)
		last = j + 1
		i = j
	}

	if last == 0 {
		return text
	}

	sb.WriteString(text[last:])
	return sb.String()
}
