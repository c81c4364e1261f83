package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ian-shakespeare/librpn/internal/interpret"
	"github.com/ian-shakespeare/librpn/pkg/array"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPrompt = "> "

	clearScreen = "\033[H\033[2J"
	example     = "eg. 2 3 + # returns 2 + 3, which is 5"
)

var exitWords = []string{"bye", "quit", "exit"}

type Shell struct {
	Prompt string

	in        io.Reader
	out       io.Writer
	err       io.Writer
	log       *logrus.Logger
	evaluator *interpret.Evaluator
}

func New(in io.Reader, out, errOut io.Writer, log *logrus.Logger) *Shell {
	return &Shell{
		Prompt:    DefaultPrompt,
		in:        in,
		out:       out,
		err:       errOut,
		log:       log,
		evaluator: interpret.New(),
	}
}

// Exec evaluates a single line, writing the result to the output stream or
// a description of the failure to the error stream.
func (s *Shell) Exec(line string) error {
	result, err := s.evaluator.Evaluate(line)
	if err != nil {
		s.log.WithError(err).WithField("line", line).Debug("evaluation failed")
		fmt.Fprintf(s.err, "Error: %s\n", Describe(err))
		return err
	}

	s.log.WithFields(logrus.Fields{
		"line":   line,
		"result": result,
	}).Debug("line evaluated")
	fmt.Fprintln(s.out, result)
	return nil
}

// Run prompts for lines until an exit word, the end of input, or ctx is
// done. Evaluation errors are reported and the loop carries on.
func (s *Shell) Run(ctx context.Context) error {
	// Cancelled on return so the reader stops even with input left over.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	PrintLogo(s.out)
	fmt.Fprintln(s.out, example)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(s.out, s.Prompt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					if ctxErr := ctx.Err(); ctxErr != nil {
						return ctxErr
					}
					return fmt.Errorf("reading input: %w", err)
				}
				fmt.Fprintln(s.out)
				s.sayBye()
				return nil
			}
			if s.handle(line) {
				return nil
			}
		}
	}
}

// handle reports whether the shell should stop.
func (s *Shell) handle(line string) bool {
	word := strings.ToLower(strings.TrimSpace(line))

	switch {
	case word == "":
	case array.Contains(exitWords, word):
		s.sayBye()
		return true
	case word == "clear":
		fmt.Fprint(s.out, clearScreen)
	default:
		_ = s.Exec(line)
	}
	return false
}

func (s *Shell) sayBye() {
	fmt.Fprintln(s.out, "Bye Bye!")
}

// Describe renders err for a person at the prompt.
func Describe(err error) string {
	var evalErr *interpret.EvalError
	if errors.As(err, &evalErr) && evalErr.Message != "" {
		return evalErr.Message
	}
	return err.Error()
}
