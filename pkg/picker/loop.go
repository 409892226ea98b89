package picker

import (
	"os"

	"pickd/internal/errors"
	"pickd/pkg/term"
)

// browseOutcome is the result of browsing one directory.
type browseOutcome struct {
	path      string // selected path, when done
	descend   string // next directory, when the user entered a subfolder
	cancelled bool
}

// interactOn drives the outer interaction: one browse per directory, with
// selection and paging rebuilt from scratch on every descent. The terminal
// session (raw mode, hidden cursor) is scoped to this call and restored on
// every exit path, error exits included.
func (p *FilePicker) interactOn(t term.Terminal, allowQuit bool) (string, bool, error) {
	match, err := p.filter.matcher()
	if err != nil {
		return "", false, err
	}

	directory := p.initialFolder
	if directory == "" {
		directory, err = os.Getwd()
		if err != nil {
			return "", false, errors.Wrap(err, "resolve working directory")
		}
	}

	restore, err := t.Session()
	if err != nil {
		return "", false, err
	}
	defer restore()

	for {
		entries, err := listDir(directory, match)
		if err != nil {
			return "", false, err
		}

		out, err := p.browse(t, entries, allowQuit)
		if err != nil {
			return "", false, err
		}
		if out.descend != "" {
			directory = out.descend
			continue
		}
		if out.cancelled {
			return "", false, nil
		}
		return out.path, true, nil
	}
}

// browse runs the inner frame/key loop over one directory's entries until a
// key terminates it or triggers a descent.
func (p *FilePicker) browse(t term.Terminal, entries []Entry, allowQuit bool) (browseOutcome, error) {
	rend := newFrameRenderer(t, p.theme)
	pg := newPaging(t, len(entries), p.maxLength)
	sel := selection{}

	// Display widths feed the soft-wrap compensation on item-only clears.
	widths := itemWidths(entries)

	for {
		if p.hasPrompt && rend.promptHeight == 0 {
			if err := rend.prompt(p.prompt, pg.current, pg.pages, pg.active); err != nil {
				return browseOutcome{}, err
			}
		}
		start := pg.current * pg.capacity
		end := min(start+pg.capacity, len(entries))
		for idx := start; idx < end; idx++ {
			if err := rend.item(entries[idx].Name, sel.at(idx)); err != nil {
				return browseOutcome{}, err
			}
		}
		if err := t.Flush(); err != nil {
			return browseOutcome{}, err
		}

		key, err := t.ReadKey()
		if err != nil {
			return browseOutcome{}, err
		}

		switch {
		case key.Kind == term.KeyArrowDown || key.Kind == term.KeyTab || isRune(key, 'j'):
			sel = sel.next(len(entries))

		case key.Kind == term.KeyArrowUp || key.Kind == term.KeyBackTab || isRune(key, 'k'):
			sel = sel.prev(len(entries))

		case key.Kind == term.KeyArrowLeft || isRune(key, 'h'):
			if pg.active {
				sel = selection{index: pg.prevPage(), valid: true}
			}

		case key.Kind == term.KeyArrowRight || isRune(key, 'l'):
			if pg.active {
				sel = selection{index: pg.nextPage(), valid: true}
			}

		case key.Kind == term.KeyEscape || isRune(key, 'q'):
			if allowQuit {
				if err := rend.clear(); err != nil {
					return browseOutcome{}, err
				}
				if err := t.Flush(); err != nil {
					return browseOutcome{}, err
				}
				return browseOutcome{cancelled: true}, nil
			}
			// Ignored when the caller forbids cancellation.

		case key.Kind == term.KeyEnter && sel.valid:
			chosen := entries[sel.index]
			if err := p.finish(t, rend, chosen); err != nil {
				return browseOutcome{}, err
			}
			return browseOutcome{path: chosen.Path}, nil

		case isRune(key, ' ') && sel.valid:
			chosen := entries[sel.index]
			if err := p.finish(t, rend, chosen); err != nil {
				return browseOutcome{}, err
			}
			if chosen.IsDir {
				// The confirmation line, if any, is erased with the frame.
				if err := rend.clear(); err != nil {
					return browseOutcome{}, err
				}
				if err := t.Flush(); err != nil {
					return browseOutcome{}, err
				}
				return browseOutcome{descend: chosen.Path}, nil
			}
			return browseOutcome{path: chosen.Path}, nil

		default:
			// Any other key is ignored and the loop continues.
		}

		if sel.valid {
			pg.update(sel.index)
		} else {
			pg.update(-1)
		}

		if pg.active {
			if err := rend.clear(); err != nil {
				return browseOutcome{}, err
			}
		} else {
			if err := rend.clearPreservePrompt(widths); err != nil {
				return browseOutcome{}, err
			}
		}
	}
}

// finish applies the shared Enter/Space completion behavior: erase the frame
// when configured to, then print the confirmation line when reporting is on.
func (p *FilePicker) finish(t term.Terminal, rend *frameRenderer, chosen Entry) error {
	if p.clearOnExit {
		if err := rend.clear(); err != nil {
			return err
		}
	}
	if p.hasPrompt && p.report {
		if err := rend.promptSelection(p.prompt, chosen.Name); err != nil {
			return err
		}
	}
	return t.Flush()
}

func isRune(k term.Key, r rune) bool {
	return k.Kind == term.KeyRune && k.Rune == r
}
