package interpret

import (
	"errors"
	"io"
	"iter"

	"github.com/ian-shakespeare/librpn/pkg/array"
	"github.com/ian-shakespeare/librpn/pkg/runes"
)

const commentMarker = '#'

var whitespace = []rune{' ', '\t', '\r', '\n', '\v', '\f'}

type Scanner struct {
	input *runes.Reader
	// done is set once a comment marker ends the scan.
	done bool
}

func NewScanner(input io.Reader) *Scanner {
	return &Scanner{
		input: runes.NewReader(input),
	}
}

// NextToken returns the next token in the input, or io.EOF once the input
// or a comment has ended the scan. Whitespace never produces a token.
func (s *Scanner) NextToken() (Token, error) {
	if s.done {
		return Token{}, io.EOF
	}

	for {
		c, err := s.getNextCharacter()
		if err != nil {
			return Token{}, err
		}

		switch {
		case array.Contains(whitespace, c):
			continue
		case c == commentMarker:
			s.done = true
			return Token{Type: COMMENT_TOKEN, Value: []rune{c}}, nil
		case isDigit(c):
			return s.scanNumber(c)
		default:
			return Token{Type: OPERATOR_TOKEN, Value: []rune{c}}, nil
		}
	}
}

// Tokens yields every token up to the end of input. A comment token is the
// last one yielded, as is the first error.
func (s *Scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(token, err) || err != nil {
				return
			}
		}
	}
}

func (s *Scanner) getNextCharacter() (rune, error) {
	c, err := s.input.PeekRune()
	if errors.Is(err, runes.ErrInvalidRune) {
		return 0, NewSyntaxError("input is not valid UTF-8")
	}
	if err != nil {
		return 0, err
	}

	if _, _, err := s.input.ReadRune(); err != nil {
		return 0, err
	}
	return c, nil
}

// scanNumber accumulates a base 10 literal. Values past the range of int64
// wrap like any other int64 arithmetic.
func (s *Scanner) scanNumber(first rune) (Token, error) {
	token := Token{Type: NUMBER_TOKEN, Number: digitValue(first)}
	token.Append(first)

	for {
		c, err := s.input.PeekRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, runes.ErrInvalidRune) {
			// Reported as a syntax error by the next call to NextToken.
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !isDigit(c) {
			break
		}

		if _, _, err := s.input.ReadRune(); err != nil {
			return Token{}, err
		}
		token.Append(c)
		token.Number = token.Number*10 + digitValue(c)
	}

	return token, nil
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func digitValue(c rune) int64 {
	return int64(c - '0')
}
