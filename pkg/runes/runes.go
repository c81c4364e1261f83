package runes

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

var ErrInvalidRune = errors.New("rune error")

type Reader struct {
	*bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{bufio.NewReader(r)}
}

// PeekRunes returns the next n runes without advancing the reader. Fewer
// than n runes are returned if the input ends first; io.EOF is returned
// only when there is nothing left to peek.
func (r *Reader) PeekRunes(n int) ([]rune, error) {
	if n < 1 {
		return nil, nil
	}

	word := make([]rune, 0, n)
	peekOffset := 0

	for len(word) < n {
		b, err := r.Peek(peekOffset + utf8.UTFMax)
		if len(b) <= peekOffset {
			if len(word) > 0 {
				break
			}
			if err == nil {
				err = io.EOF
			}
			return nil, err
		}

		char, size := utf8.DecodeRune(b[peekOffset:])
		if char == utf8.RuneError && size <= 1 {
			return nil, ErrInvalidRune
		}

		peekOffset += size
		word = append(word, char)
	}

	return word, nil
}

func (r *Reader) PeekRune() (rune, error) {
	word, err := r.PeekRunes(1)
	if err != nil {
		return 0, err
	}
	return word[0], nil
}
