// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseBlocks_Paragraphs(t *testing.T) {
	input := "first line\nsecond line"
	expected := "<p>first line</p>\n<p>second line</p>"

	require.Equal(t, expected, ParseBlocks(input))
}

func Test_ParseBlocks_Headers(t *testing.T) {
	input := "## Summary\n### Findings"
	expected := "<h2>Summary</h2>\n<h3>Findings</h3>"

	require.Equal(t, expected, ParseBlocks(input))
}

func Test_ParseBlocks_UnorderedList(t *testing.T) {
	input := "- first\n- second\n- third"
	expected := "<ul>\n<li>first</li>\n<li>second</li>\n<li>third</li>\n</ul>"

	require.Equal(t, expected, ParseBlocks(input))
}

func Test_ParseBlocks_OrderedList(t *testing.T) {
	input := "1. first\n2. second"
	expected := "<ol>\n<li>first</li>\n<li>second</li>\n</ol>"

	require.Equal(t, expected, ParseBlocks(input))
}

func Test_ParseBlocks_ListInterrupted(t *testing.T) {
	// A non-list line splits one run into two separate lists.
	input := "- first\nparagraph\n- second"
	expected := "<ul>\n<li>first</li>\n</ul>\n<p>paragraph</p>\n<ul>\n<li>second</li>\n</ul>"

	require.Equal(t, expected, ParseBlocks(input))
}

func Test_ParseBlocks_ListTypeSwitch(t *testing.T) {
	// Switching list types closes the open list before opening the other.
	input := "- bullet\n1. numbered"
	expected := "<ul>\n<li>bullet</li>\n</ul>\n<ol>\n<li>numbered</li>\n</ol>"

	require.Equal(t, expected, ParseBlocks(input))
}

func Test_ParseBlocks_BlankLineClosesList(t *testing.T) {
	input := "- item\n\nafter"
	expected := "<ul>\n<li>item</li>\n</ul>\n<p>after</p>"

	require.Equal(t, expected, ParseBlocks(input))
}

func Test_ParseBlocks_ListClosedAtEndOfInput(t *testing.T) {
	output := ParseBlocks("1. only item")

	require.True(t, strings.HasSuffix(output, "</ol>"))
	require.Equal(t, strings.Count(output, "<ol>"), strings.Count(output, "</ol>"))
}

func Test_ParseBlocks_Blockquote(t *testing.T) {
	input := "> important note"
	expected := "<blockquote>important note</blockquote>"

	require.Equal(t, expected, ParseBlocks(input))
}

func Test_ParseBlocks_Empty(t *testing.T) {
	require.Equal(t, "", ParseBlocks(""))
}

func Test_ParseBlocks_BalancedListTags(t *testing.T) {
	inputs := []string{
		"- a\n- b\n1. c\n2. d\n- e",
		"## h\n- a\n\n- b\ntext\n1. c",
		"1. a\n> q\n2. b",
	}

	for _, input := range inputs {
		output := ParseBlocks(input)
		require.Equal(t, strings.Count(output, "<ul>"), strings.Count(output, "</ul>"), input)
		require.Equal(t, strings.Count(output, "<ol>"), strings.Count(output, "</ol>"), input)
	}
}
