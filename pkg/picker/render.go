package picker

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"pickd/pkg/term"
)

// frameRenderer owns the picker's terminal writes. It counts how many lines
// each frame printed so the next frame can erase exactly that many, never
// the whole scroll buffer. itemHeight covers the item list; promptHeight is
// latched separately so item-only redraws leave the prompt in place.
type frameRenderer struct {
	t     term.Terminal
	theme Theme

	itemHeight   int
	promptHeight int
}

func newFrameRenderer(t term.Terminal, theme Theme) *frameRenderer {
	return &frameRenderer{t: t, theme: theme}
}

// prompt writes the prompt line, suffixed with a page indicator while paging
// is active. page is 0-based; the indicator shows it 1-based.
func (r *frameRenderer) prompt(text string, page, pages int, pagingActive bool) error {
	line := r.theme.FormatPrompt(text)
	if pagingActive {
		line += fmt.Sprintf(" [Page %d/%d] ", page+1, pages)
	}
	return r.writePrompt(line)
}

// promptSelection writes the confirmation line naming the chosen entry.
func (r *frameRenderer) promptSelection(text, chosen string) error {
	return r.writePrompt(r.theme.FormatPromptSelection(text, chosen))
}

func (r *frameRenderer) writePrompt(line string) error {
	if err := r.t.WriteLine(line); err != nil {
		return err
	}
	// The prompt latch absorbs any item lines still on screen, so a later
	// full clear erases them along with the prompt.
	r.promptHeight = r.itemHeight + strings.Count(line, "\n") + 1
	r.itemHeight = 0
	return nil
}

// item writes one item line using the theme's active/inactive decoration.
func (r *frameRenderer) item(text string, active bool) error {
	line := r.theme.FormatItem(text, active)
	if err := r.t.WriteLine(line); err != nil {
		return err
	}
	r.itemHeight += strings.Count(line, "\n") + 1
	return nil
}

// clear erases the whole frame, prompt included, and resets both counters.
func (r *frameRenderer) clear() error {
	if err := r.t.ClearLastLines(r.itemHeight + r.promptHeight); err != nil {
		return err
	}
	r.itemHeight = 0
	r.promptHeight = 0
	return nil
}

// clearPreservePrompt erases only the item lines. Items wider than the
// terminal soft-wrap onto a second physical line, so each such width adds
// one line to the erase count. widths must cover every listed item; the
// caller only uses this path while paging is inactive, when all items are
// on screen.
func (r *frameRenderer) clearPreservePrompt(widths []int) error {
	_, cols := r.t.Size()
	height := r.itemHeight
	for _, w := range widths {
		if w > cols {
			height++
		}
	}
	if err := r.t.ClearLastLines(height); err != nil {
		return err
	}
	r.itemHeight = 0
	return nil
}

// itemWidths measures the display width of each item line. Multi-line names
// contribute one width per line, matching how the renderer counts heights.
func itemWidths(entries []Entry) []int {
	var widths []int
	for _, e := range entries {
		for _, part := range strings.Split(e.Name, "\n") {
			widths = append(widths, runewidth.StringWidth(part))
		}
	}
	return widths
}
