// Package diffview builds the display bundle for a formatting result: both
// texts escaped for fixed-width rendering and a side-by-side HTML diff table.
package diffview

import (
	"errors"
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/rules"
)

const (
	// ContextLines is the number of unchanged lines shown around each change.
	ContextLines = 2
	// WrapColumn is the width at which long lines continue on the next row.
	WrapColumn = 80
	// MaxLines caps the input size; larger inputs produce no table.
	MaxLines = 20000

	tabSize      = 8
	fromDesc     = "Original Code"
	toDesc       = "Formatted Code"
	continuation = ">"
)

var errTooLarge = errors.New("input too large to diff")

// Build assembles the display bundle. It never fails: if the diff table cannot
// be built, DiffHTML is empty.
func Build(original, formatted string) core.DiffView {
	return core.DiffView{
		OriginalHTML:  preformatted(original),
		FormattedHTML: preformatted(formatted),
		DiffHTML:      template.HTML(SideBySide(original, formatted)), //nolint:gosec // every cell is escaped in writeCell
		OriginalRaw:   original,
		FormattedRaw:  formatted,
	}
}

// SideBySide renders a two-column diff table of a and b, or returns "" if the
// table cannot be built.
func SideBySide(a, b string) (table string) {
	defer func() {
		if r := recover(); r != nil {
			table = ""
		}
	}()

	out, err := renderTable(rules.SplitLines(a), rules.SplitLines(b))
	if err != nil {
		return ""
	}
	return out
}

func preformatted(text string) template.HTML {
	return template.HTML("<pre>" + html.EscapeString(text) + "</pre>") //nolint:gosec // escaped above
}

type side struct {
	lineNo int // 0 renders an empty cell
	text   string
	class  string
}

func renderTable(a, b []string) (string, error) {
	if len(a) > MaxLines || len(b) > MaxLines {
		return "", fmt.Errorf("%w: %d and %d lines", errTooLarge, len(a), len(b))
	}

	var sb strings.Builder
	sb.WriteString(`<table class="diff" summary="` + fromDesc + ` vs ` + toDesc + `">` + "\n")
	sb.WriteString(`<colgroup></colgroup><colgroup></colgroup><colgroup></colgroup><colgroup></colgroup>` + "\n")
	sb.WriteString(`<thead><tr><th class="diff_header" colspan="2">` + fromDesc +
		`</th><th class="diff_header" colspan="2">` + toDesc + "</th></tr></thead>\n")

	matcher := difflib.NewMatcher(a, b)
	if !hasChanges(matcher.GetOpCodes()) {
		sb.WriteString(`<tbody><tr><td class="diff_nodiff" colspan="4">No Differences Found</td></tr></tbody>` + "\n")
		sb.WriteString("</table>")
		return sb.String(), nil
	}

	for _, group := range matcher.GetGroupedOpCodes(ContextLines) {
		sb.WriteString("<tbody>\n")
		for _, op := range group {
			writeOpCode(&sb, op, a, b)
		}
		sb.WriteString("</tbody>\n")
	}
	sb.WriteString("</table>")
	return sb.String(), nil
}

func hasChanges(ops []difflib.OpCode) bool {
	for _, op := range ops {
		if op.Tag != 'e' {
			return true
		}
	}
	return false
}

func writeOpCode(sb *strings.Builder, op difflib.OpCode, a, b []string) {
	left := op.I2 - op.I1
	right := op.J2 - op.J1
	rows := max(left, right)

	for k := 0; k < rows; k++ {
		var l, r side
		if k < left {
			l = side{lineNo: op.I1 + k + 1, text: a[op.I1+k]}
		}
		if k < right {
			r = side{lineNo: op.J1 + k + 1, text: b[op.J1+k]}
		}

		switch op.Tag {
		case 'r':
			l.class, r.class = "diff_chg", "diff_chg"
		case 'd':
			l.class = "diff_sub"
		case 'i':
			r.class = "diff_add"
		}
		if l.lineNo == 0 {
			l.class = ""
		}
		if r.lineNo == 0 {
			r.class = ""
		}
		writeRow(sb, l, r)
	}
}

// writeRow emits one logical line pair, continued over several table rows
// when either side is longer than WrapColumn.
func writeRow(sb *strings.Builder, l, r side) {
	lChunks := wrap(expandTabs(l.text), WrapColumn)
	rChunks := wrap(expandTabs(r.text), WrapColumn)
	n := max(len(lChunks), len(rChunks))

	for i := 0; i < n; i++ {
		sb.WriteString("<tr>")
		writeCell(sb, l, lChunks, i)
		writeCell(sb, r, rChunks, i)
		sb.WriteString("</tr>\n")
	}
}

func writeCell(sb *strings.Builder, s side, chunks []string, i int) {
	label := ""
	switch {
	case s.lineNo > 0 && i == 0:
		label = strconv.Itoa(s.lineNo)
	case s.lineNo > 0 && i < len(chunks):
		label = continuation
	}

	text := ""
	if s.lineNo > 0 && i < len(chunks) {
		text = strings.ReplaceAll(html.EscapeString(chunks[i]), " ", "&nbsp;")
	}

	sb.WriteString(`<td class="diff_lineno">` + label + `</td>`)
	if s.class != "" {
		sb.WriteString(`<td class="diff_text ` + s.class + `">` + text + `</td>`)
	} else {
		sb.WriteString(`<td class="diff_text">` + text + `</td>`)
	}
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := tabSize - col%tabSize
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

// wrap splits s into chunks of at most width runes. Empty text is a single
// empty chunk.
func wrap(s string, width int) []string {
	runes := []rune(s)
	if len(runes) <= width {
		return []string{s}
	}
	var chunks []string
	for len(runes) > width {
		chunks = append(chunks, string(runes[:width]))
		runes = runes[width:]
	}
	return append(chunks, string(runes))
}
