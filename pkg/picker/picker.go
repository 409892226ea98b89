// Package picker implements a hierarchical file/folder picker for the
// terminal. The user browses a directory tree with the keyboard, pages
// through long listings, descends into subfolders with Space and confirms a
// selection with Enter. Rendering is incremental: each frame erases exactly
// the lines the previous frame printed.
package picker

import (
	"pickd/internal/errors"
	"pickd/pkg/term"
)

// FilePicker configures and runs one picker interaction. Configure it with
// the chainable setters, then call one of the Interact entry points. A
// FilePicker may be reused for several interactions, but never concurrently:
// a running interaction owns its terminal exclusively.
type FilePicker struct {
	filter        Filter
	prompt        string
	hasPrompt     bool
	report        bool
	clearOnExit   bool
	maxLength     int
	initialFolder string
	theme         Theme
}

// New creates a picker with the given filter and the plain default theme.
func New(filter Filter) *FilePicker {
	return NewWithTheme(filter, Simple{})
}

// NewWithTheme creates a picker with a specific theme.
func NewWithTheme(filter Filter, theme Theme) *FilePicker {
	return &FilePicker{
		filter:      filter,
		clearOnExit: true,
		theme:       theme,
	}
}

// WithPrompt sets the prompt line shown above the listing. Setting a prompt
// also enables reporting; opt back out with Report(false).
func (p *FilePicker) WithPrompt(prompt string) *FilePicker {
	p.prompt = prompt
	p.hasPrompt = true
	p.report = true
	return p
}

// Report controls whether a confirmation line naming the chosen entry is
// printed after the interaction. Reporting needs a prompt to be set.
func (p *FilePicker) Report(val bool) *FilePicker {
	p.report = val
	return p
}

// Clear controls whether the widget is erased from the screen when the
// interaction ends. The default is to clear.
func (p *FilePicker) Clear(val bool) *FilePicker {
	p.clearOnExit = val
	return p
}

// MaxLength caps the number of visible rows per page. Two rows are reserved
// for the page indicator, so the stored capacity is val+2.
func (p *FilePicker) MaxLength(val int) *FilePicker {
	p.maxLength = val + 2
	return p
}

// InitialFolder sets the directory the picker opens in. The default is the
// process's current working directory.
func (p *FilePicker) InitialFolder(dir string) *FilePicker {
	p.initialFolder = dir
	return p
}

// Interact runs the picker on the default terminal and returns the chosen
// path. Escape and q are ignored; this entry point does not permit
// cancellation.
func (p *FilePicker) Interact() (string, error) {
	return p.InteractOn(term.Stderr())
}

// InteractOpt runs the picker on the default terminal. Escape and q cancel
// the interaction, reported as ok == false.
func (p *FilePicker) InteractOpt() (string, bool, error) {
	return p.InteractOnOpt(term.Stderr())
}

// InteractOn is like Interact but runs on an explicit terminal handle.
func (p *FilePicker) InteractOn(t term.Terminal) (string, error) {
	path, ok, err := p.interactOn(t, false)
	if err != nil {
		return "", err
	}
	if !ok {
		// Unreachable through the public key map; guards the contract.
		return "", errors.ErrCancelNotAllowed
	}
	return path, nil
}

// InteractOnOpt is like InteractOpt but runs on an explicit terminal handle.
func (p *FilePicker) InteractOnOpt(t term.Terminal) (string, bool, error) {
	return p.interactOn(t, true)
}
