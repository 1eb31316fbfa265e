package diffview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_IdenticalTexts(t *testing.T) {
	code := "def f(x):\n    return x\n"
	view := Build(code, code)

	assert.Equal(t, view.OriginalHTML, view.FormattedHTML)
	assert.Contains(t, string(view.DiffHTML), "No Differences Found")
	for _, class := range []string{"diff_add", "diff_sub", "diff_chg"} {
		assert.NotContains(t, string(view.DiffHTML), class)
	}
	assert.Equal(t, code, view.OriginalRaw)
	assert.Equal(t, code, view.FormattedRaw)
}

func TestBuild_EmptyInputs(t *testing.T) {
	var view = Build("", "")

	assert.Equal(t, "<pre></pre>", string(view.OriginalHTML))
	assert.Equal(t, "<pre></pre>", string(view.FormattedHTML))
	assert.NotContains(t, string(view.DiffHTML), "diff_add")
	assert.NotContains(t, string(view.DiffHTML), "diff_sub")
	assert.Empty(t, view.OriginalRaw)
	assert.Empty(t, view.FormattedRaw)
}

func TestBuild_EscapesText(t *testing.T) {
	view := Build("if a < b and c > d: s = '&'\n", "if a < b and c > d:\n    s = '&'\n")

	assert.Equal(t, "<pre>if a &lt; b and c &gt; d: s = &#39;&amp;&#39;\n</pre>", string(view.OriginalHTML))
	assert.NotContains(t, string(view.DiffHTML), "a < b")
	assert.Contains(t, string(view.DiffHTML), "a&nbsp;&lt;&nbsp;b")
}

func TestSideBySide_MarksChanges(t *testing.T) {
	original := "import os\nx=1\ny = 2\n"
	formatted := "import os\n\nx = 1\ny = 2\n"

	table := SideBySide(original, formatted)
	require.NotEmpty(t, table)

	assert.Contains(t, table, "Original Code")
	assert.Contains(t, table, "Formatted Code")
	assert.Contains(t, table, "diff_chg")
	assert.NotContains(t, table, "No Differences Found")
}

func TestSideBySide_InsertAndDelete(t *testing.T) {
	t.Run("insert only", func(t *testing.T) {
		table := SideBySide("a\n", "a\nb\n")
		assert.Contains(t, table, "diff_add")
		assert.NotContains(t, table, "diff_sub")
	})

	t.Run("delete only", func(t *testing.T) {
		table := SideBySide("a\nb\n", "a\n")
		assert.Contains(t, table, "diff_sub")
		assert.NotContains(t, table, "diff_add")
	})
}

func TestSideBySide_ContextWindow(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "line"+string(rune('a'+i)))
	}
	original := strings.Join(lines, "\n")
	changed := append([]string{}, lines...)
	changed[10] = "CHANGED"

	table := SideBySide(original, strings.Join(changed, "\n"))

	// Two lines of context on each side of line 11.
	for _, visible := range []string{"linei", "linej", "linel", "linem"} {
		assert.Contains(t, table, visible)
	}
	for _, hidden := range []string{"linea", "lineh", "linen", "linet"} {
		assert.NotContains(t, table, ">"+hidden+"<")
	}
}

func TestSideBySide_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("x", WrapColumn+5)
	table := SideBySide("short\n", long+"\n")

	assert.Contains(t, table, `<td class="diff_lineno">`+continuation+`</td>`)
	assert.Contains(t, table, strings.Repeat("x", WrapColumn)+"<")
	assert.Contains(t, table, ">xxxxx<")
}

func TestSideBySide_TooLargeYieldsEmptyTable(t *testing.T) {
	huge := strings.Repeat("a\n", MaxLines+1)
	assert.Empty(t, SideBySide(huge, "a\n"))

	view := Build(huge, "a\n")
	assert.Empty(t, string(view.DiffHTML))
	assert.NotEmpty(t, view.OriginalHTML)
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "        x", expandTabs("\tx"))
	assert.Equal(t, "ab      x", expandTabs("ab\tx"))
	assert.Equal(t, "plain", expandTabs("plain"))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{""}, wrap("", 4))
	assert.Equal(t, []string{"abcd"}, wrap("abcd", 4))
	assert.Equal(t, []string{"abcd", "ef"}, wrap("abcdef", 4))
}
