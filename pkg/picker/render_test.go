package picker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererPromptWithPageIndicator(t *testing.T) {
	ft := newFakeTerm()
	r := newFrameRenderer(ft, Simple{})

	require.NoError(t, r.prompt("Pick a file", 1, 3, true))

	require.Len(t, ft.lines, 1)
	assert.Equal(t, "Pick a file: [Page 2/3] ", ft.lines[0])
	assert.Equal(t, 1, r.promptHeight)
	assert.Equal(t, 0, r.itemHeight)
}

func TestRendererPromptWithoutPaging(t *testing.T) {
	ft := newFakeTerm()
	r := newFrameRenderer(ft, Simple{})

	require.NoError(t, r.prompt("Pick a file", 0, 1, false))

	assert.Equal(t, "Pick a file:", ft.lines[0])
	assert.NotContains(t, ft.lines[0], "[Page")
}

func TestRendererHeightAccounting(t *testing.T) {
	ft := newFakeTerm()
	r := newFrameRenderer(ft, Simple{})

	require.NoError(t, r.prompt("Pick", 0, 1, false))
	require.NoError(t, r.item("one", true))
	require.NoError(t, r.item("two", false))

	assert.Equal(t, 1, r.promptHeight)
	assert.Equal(t, 2, r.itemHeight)
	assert.Equal(t, "> one", ft.lines[1])
	assert.Equal(t, "  two", ft.lines[2])

	require.NoError(t, r.clear())
	assert.Equal(t, []int{3}, ft.cleared)
	assert.Equal(t, 0, r.promptHeight)
	assert.Equal(t, 0, r.itemHeight)
	assert.Empty(t, ft.visible)
}

func TestRendererClearPreservePrompt(t *testing.T) {
	ft := newFakeTerm()
	r := newFrameRenderer(ft, Simple{})

	require.NoError(t, r.prompt("Pick", 0, 1, false))
	require.NoError(t, r.item("one", false))
	require.NoError(t, r.item("two", false))

	require.NoError(t, r.clearPreservePrompt([]int{3, 3}))

	assert.Equal(t, []int{2}, ft.cleared)
	assert.Equal(t, 0, r.itemHeight)
	assert.Equal(t, 1, r.promptHeight, "prompt survives an item-only clear")
	assert.Equal(t, []string{"Pick:"}, ft.visible)
}

func TestRendererSoftWrapCompensation(t *testing.T) {
	ft := newFakeTerm() // 80 columns
	r := newFrameRenderer(ft, Simple{})

	wide := strings.Repeat("x", 100)
	require.NoError(t, r.item("short", false))
	require.NoError(t, r.item(wide, false))

	// The wide item occupies two physical lines, so the erase count is
	// itemHeight plus one.
	require.NoError(t, r.clearPreservePrompt([]int{5, 100}))
	assert.Equal(t, []int{3}, ft.cleared)
}

func TestRendererPromptLatchAbsorbsItemLines(t *testing.T) {
	ft := newFakeTerm()
	r := newFrameRenderer(ft, Simple{})

	require.NoError(t, r.item("one", false))
	require.NoError(t, r.item("two", false))

	// A confirmation line written over a still-visible item list folds the
	// item lines into the prompt latch.
	require.NoError(t, r.promptSelection("Pick", "two"))
	assert.Equal(t, 3, r.promptHeight)
	assert.Equal(t, 0, r.itemHeight)

	require.NoError(t, r.clear())
	assert.Equal(t, []int{3}, ft.cleared)
	assert.Empty(t, ft.visible)
}

func TestRendererMultilinePromptHeight(t *testing.T) {
	ft := newFakeTerm()
	r := newFrameRenderer(ft, Simple{})

	require.NoError(t, r.prompt("line one\nline two", 0, 1, false))
	assert.Equal(t, 2, r.promptHeight)
}

func TestItemWidthsSplitsOnNewlines(t *testing.T) {
	widths := itemWidths([]Entry{
		{Name: "abc"},
		{Name: "ab\ncdef"},
	})
	assert.Equal(t, []int{3, 2, 4}, widths)
}
