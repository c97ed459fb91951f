// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package highlight marks located log statements in rendered source.
package highlight

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/petar-djukic/codelog/internal/classify"
	"github.com/petar-djukic/codelog/pkg/types"
)

// Decoration marks one statement.
type Decoration struct {
	Range types.Range
	Hover string
}

// Highlighter renders decorations in a color and underline style. It is
// owned by its caller; Update may be called while other goroutines render.
type Highlighter struct {
	mu       sync.RWMutex
	renderer *lipgloss.Renderer
	color    string
	style    string
}

// New returns a Highlighter using the default lipgloss renderer.
func New(color, style string) *Highlighter {
	return NewWithRenderer(lipgloss.DefaultRenderer(), color, style)
}

// NewWithRenderer returns a Highlighter bound to r, which decides the
// color profile of the output.
func NewWithRenderer(r *lipgloss.Renderer, color, style string) *Highlighter {
	return &Highlighter{renderer: r, color: color, style: style}
}

// Update changes the color and style used by later renders.
func (h *Highlighter) Update(color, style string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.color = color
	h.style = style
}

// Color returns the current highlight color.
func (h *Highlighter) Color() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.color
}

// Style returns the current underline style.
func (h *Highlighter) Style() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.style
}

// Decorations builds one decoration per entry.
func (h *Highlighter) Decorations(entries []types.ClassifiedEntry) []Decoration {
	decs := make([]Decoration, len(entries))
	for i, e := range entries {
		decs[i] = Decoration{Range: e.Range, Hover: hover(e)}
	}
	return decs
}

func hover(e types.ClassifiedEntry) string {
	var b strings.Builder
	b.WriteString("Log statement")
	if e.FunctionName != "" {
		b.WriteString(" in ")
		b.WriteString(e.FunctionName)
	}
	if e.IsCommented {
		b.WriteString(" (commented)")
	}
	b.WriteString(": ")
	b.WriteString(e.Log)
	return b.String()
}

// lipglossStyle maps the configured style onto terminal attributes. Every
// style underlines; "double" is also bold since terminals have no double
// underline.
func (h *Highlighter) lipglossStyle() lipgloss.Style {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s := h.renderer.NewStyle().Foreground(lipgloss.Color(h.color)).Underline(true)
	if h.style == "double" {
		s = s.Bold(true)
	}
	return s
}

// Line is one rendered source line.
type Line struct {
	Number    int    // 1-based
	Text      string // Styled text
	Decorated bool
}

// RenderLines styles the decorated spans of every line of source.
func (h *Highlighter) RenderLines(source string, decs []Decoration) []Line {
	style := h.lipglossStyle()
	idx := classify.NewLineIndex(source)

	lines := make([]Line, idx.LineCount())
	for i := range lines {
		text := idx.LineText(i)
		spans := lineSpans(i, len(text), decs)

		var b strings.Builder
		pos := 0
		for _, sp := range spans {
			b.WriteString(text[pos:sp[0]])
			b.WriteString(style.Render(text[sp[0]:sp[1]]))
			pos = sp[1]
		}
		b.WriteString(text[pos:])

		lines[i] = Line{Number: i + 1, Text: b.String(), Decorated: len(spans) > 0}
	}
	return lines
}

// Render returns source with decorated spans styled.
func (h *Highlighter) Render(source string, decs []Decoration) string {
	lines := h.RenderLines(source, decs)
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

// lineSpans returns the sorted, merged [start, end) byte columns of line
// covered by decs.
func lineSpans(line, width int, decs []Decoration) [][2]int {
	var spans [][2]int
	for _, d := range decs {
		if line < d.Range.Start.Line || line > d.Range.End.Line {
			continue
		}
		start, end := 0, width
		if line == d.Range.Start.Line {
			start = min(d.Range.Start.Column, width)
		}
		if line == d.Range.End.Line {
			end = min(d.Range.End.Column, width)
		}
		if start < end {
			spans = append(spans, [2]int{start, end})
		}
	}

	slices.SortFunc(spans, func(a, b [2]int) int { return cmp.Compare(a[0], b[0]) })

	var merged [][2]int
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp[0] <= merged[n-1][1] {
			merged[n-1][1] = max(merged[n-1][1], sp[1])
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}
