// Package prompt reads line based answers from the user.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type answer struct {
	line string
	err  error
}

// Prompter writes questions to out and reads one line per answer from in.
// End of input answers every question with an empty line.
//
// A Prompter is not safe for concurrent use.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending holds the read started by a cancelled Ask. The next Ask takes
	// its line instead of starting a second reader on the same input.
	pending chan answer
}

// New constructs a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and returns the trimmed answer. io.EOF is not an error:
// a closed input yields an empty answer. Ask returns ctx.Err() as soon as ctx
// is done, even while the read is still blocked.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("could not write prompt: %w", err)
	}

	if p.pending == nil {
		ch := make(chan answer, 1)
		p.pending = ch
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- answer{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-p.pending:
		p.pending = nil
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return "", fmt.Errorf("could not read answer: %w", a.err)
		}

		return strings.TrimSpace(a.line), nil
	}
}

// Confirm asks a yes/no question. Only "y" and "yes" (any case) count as yes.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return false, err
	}

	return IsYes(answer), nil
}

// WaitEnter prints message and blocks until a line (or end of input) is read.
func (p *Prompter) WaitEnter(ctx context.Context, message string) error {
	_, err := p.Ask(ctx, message)

	return err
}

// IsYes reports whether answer is an affirmative reply.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint: gosec
}
