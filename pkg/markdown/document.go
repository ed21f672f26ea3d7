// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markdown

import (
	_ "embed"
	"strings"
)

//go:embed document.html
var documentTemplate string

const bodyPlaceholder = "{{body}}"

// Render converts markdown-like content into a complete, self-contained HTML
// document with inline styling and MathJax wiring. The function is pure and
// total over all inputs; an empty string still yields a valid document with an
// empty body region.
func Render(content string) string {
	body := ParseBlocks(Normalize(content))
	return strings.Replace(documentTemplate, bodyPlaceholder, body, 1)
}
