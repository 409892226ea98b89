package term

import (
	"bufio"
	"unicode/utf8"

	"pickd/internal/errors"
)

// Control bytes that matter to the picker.
const (
	byteCtrlC     = 0x03
	byteTab       = 0x09
	byteEsc       = 0x1b
	byteBackspace = 0x7f
)

// ReadKey blocks until one key press has been decoded from the input stream.
func (t *TTY) ReadKey() (Key, error) {
	k, err := decodeKey(t.reader)
	if err != nil {
		return Key{}, errors.NewTerminalError("read key", err)
	}
	return k, nil
}

// decodeKey maps the raw byte stream to a semantic key. Ctrl-C is reported
// as Escape so that cancellable pickers honour it; non-cancellable ones
// ignore it like any other Escape.
func decodeKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case byteTab:
		return Key{Kind: KeyTab}, nil
	case byteCtrlC:
		return Key{Kind: KeyEscape}, nil
	case byteEsc:
		return decodeEscape(r)
	case byteBackspace:
		return Key{Kind: KeyUnknown}, nil
	}

	if b < 0x20 {
		return Key{Kind: KeyUnknown}, nil
	}
	if b < utf8.RuneSelf {
		return Key{Kind: KeyRune, Rune: rune(b)}, nil
	}

	if err := r.UnreadByte(); err != nil {
		return Key{}, err
	}
	ru, _, err := r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	return Key{Kind: KeyRune, Rune: ru}, nil
}

// decodeEscape handles input after an ESC byte. A bare Escape press arrives
// as a lone byte; CSI and SS3 sequences arrive as a burst that bufio has
// already buffered, which is how the two cases are told apart without a
// read timeout.
func decodeEscape(r *bufio.Reader) (Key, error) {
	if r.Buffered() == 0 {
		return Key{Kind: KeyEscape}, nil
	}

	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case '[':
		// CSI: skip parameter and intermediate bytes up to the final byte.
		for {
			fin, err := r.ReadByte()
			if err != nil {
				return Key{}, err
			}
			if fin < 0x40 || fin > 0x7e {
				continue
			}
			return csiKey(fin), nil
		}
	case 'O':
		// SS3 arrows, sent by terminals in application cursor mode.
		fin, err := r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		return csiKey(fin), nil
	}

	return Key{Kind: KeyUnknown}, nil
}

func csiKey(fin byte) Key {
	switch fin {
	case 'A':
		return Key{Kind: KeyArrowUp}
	case 'B':
		return Key{Kind: KeyArrowDown}
	case 'C':
		return Key{Kind: KeyArrowRight}
	case 'D':
		return Key{Kind: KeyArrowLeft}
	case 'Z':
		return Key{Kind: KeyBackTab}
	}
	return Key{Kind: KeyUnknown}
}
