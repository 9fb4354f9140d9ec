// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/foodwallet/foodwallet/lib/theme"
)

// markdownParserInstance is initialized once and reused. The parser
// configuration never changes and the goldmark Parser is safe to
// share; actual parsing creates per-call state via Parse(reader).
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParserInstance
}

// renderMarkdown renders an assistant reply or recipe instructions as
// styled terminal text wrapped to width. Soft line breaks within
// paragraphs become spaces so hard-wrapped source reflows at any
// terminal width; code fences are syntax-highlighted.
func renderMarkdown(input string, palette theme.Palette, width int) string {
	if input == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	// Force the ANSI256 profile: this output is always for terminal
	// display inside the TUI, so auto-detection (which sees no TTY in
	// tests) would strip all color.
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{
		source:      source,
		palette:     palette,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, renderer.walk)
	return strings.TrimRight(renderer.output.String(), "\n")
}

// markdownRenderer walks a goldmark AST and produces styled terminal
// text. Paragraph inline content accumulates in a buffer and gets
// word-wrapped as a unit when the paragraph closes.
type markdownRenderer struct {
	source      []byte
	palette     theme.Palette
	width       int
	lipRenderer *lipgloss.Renderer

	output strings.Builder
	inline strings.Builder

	boldCount   int
	italicCount int

	listDepth   int
	listOrdinal []int // Per-depth counter for ordered lists; 0 for bulleted.
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := node.(type) {
	case *ast.Heading:
		if entering {
			renderer.inline.Reset()
		} else {
			heading := renderer.lipRenderer.NewStyle().
				Bold(true).
				Foreground(renderer.palette.Primary).
				Render(renderer.inline.String())
			renderer.output.WriteString(heading + "\n\n")
			renderer.inline.Reset()
		}

	case *ast.Paragraph:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushParagraph()
		}

	case *ast.Text:
		if entering {
			renderer.writeInline(string(node.Segment.Value(renderer.source)))
			if node.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
			if node.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}

	case *ast.Emphasis:
		if entering {
			if node.Level >= 2 {
				renderer.boldCount++
			} else {
				renderer.italicCount++
			}
		} else {
			if node.Level >= 2 {
				renderer.boldCount--
			} else {
				renderer.italicCount--
			}
		}

	case *ast.CodeSpan:
		if entering {
			code := string(node.Text(renderer.source))
			styled := renderer.lipRenderer.NewStyle().
				Foreground(renderer.palette.Secondary).
				Render(code)
			renderer.inline.WriteString(styled)
			return ast.WalkSkipChildren, nil
		}

	case *ast.FencedCodeBlock:
		if entering {
			renderer.writeCodeBlock(node)
			return ast.WalkSkipChildren, nil
		}

	case *ast.List:
		if entering {
			renderer.listDepth++
			ordinal := 0
			if node.IsOrdered() {
				ordinal = node.Start
			}
			renderer.listOrdinal = append(renderer.listOrdinal, ordinal)
		} else {
			renderer.listDepth--
			renderer.listOrdinal = renderer.listOrdinal[:len(renderer.listOrdinal)-1]
			if renderer.listDepth == 0 {
				renderer.output.WriteString("\n")
			}
		}

	case *ast.ListItem:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushListItem()
		}
	}
	return ast.WalkContinue, nil
}

// writeInline appends text under the current emphasis state.
func (renderer *markdownRenderer) writeInline(content string) {
	if renderer.boldCount > 0 || renderer.italicCount > 0 {
		style := renderer.lipRenderer.NewStyle()
		if renderer.boldCount > 0 {
			style = style.Bold(true)
		}
		if renderer.italicCount > 0 {
			style = style.Italic(true)
		}
		content = style.Render(content)
	}
	renderer.inline.WriteString(content)
}

// flushParagraph word-wraps the accumulated inline content. Inside a
// list item the paragraph flushes through the item instead.
func (renderer *markdownRenderer) flushParagraph() {
	if renderer.listDepth > 0 {
		return
	}
	wrapped := ansi.Wordwrap(renderer.inline.String(), renderer.width, "")
	renderer.output.WriteString(wrapped + "\n\n")
	renderer.inline.Reset()
}

// flushListItem emits the accumulated inline content as one bullet or
// numbered line, indented by nesting depth.
func (renderer *markdownRenderer) flushListItem() {
	indent := strings.Repeat("  ", renderer.listDepth-1)
	marker := "• "
	if ordinal := renderer.listOrdinal[len(renderer.listOrdinal)-1]; ordinal > 0 {
		marker = fmt.Sprintf("%d. ", ordinal)
		renderer.listOrdinal[len(renderer.listOrdinal)-1]++
	}
	markerWidth := ansi.StringWidth(marker)
	available := renderer.width - len(indent) - markerWidth
	if available < 10 {
		available = 10
	}
	wrapped := ansi.Wordwrap(renderer.inline.String(), available, "")
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if i == 0 {
			renderer.output.WriteString(indent + marker + line + "\n")
		} else {
			renderer.output.WriteString(indent + strings.Repeat(" ", markerWidth) + line + "\n")
		}
	}
	renderer.inline.Reset()
}

// writeCodeBlock renders a fenced code block, syntax-highlighted by
// chroma when the fence names a language.
func (renderer *markdownRenderer) writeCodeBlock(node *ast.FencedCodeBlock) {
	var code strings.Builder
	for i := range node.Lines().Len() {
		segment := node.Lines().At(i)
		code.Write(segment.Value(renderer.source))
	}

	language := string(node.Language(renderer.source))
	var highlighted strings.Builder
	if err := quick.Highlight(&highlighted, code.String(), language, "terminal256", "monokai"); err != nil {
		highlighted.Reset()
		highlighted.WriteString(code.String())
	}

	for line := range strings.SplitSeq(strings.TrimRight(highlighted.String(), "\n"), "\n") {
		renderer.output.WriteString("  " + line + "\n")
	}
	renderer.output.WriteString("\n")
}
