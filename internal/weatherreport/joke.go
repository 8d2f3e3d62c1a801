package weatherreport

import (
	"context"
	"fmt"
	"io"
	"pubapis/internal/prompt"
	"pubapis/pkg/jokes"
	"pubapis/pkg/logger"

	"go.uber.org/zap"
)

// JokeTeller prints a joke and waits for the user before the punchline.
type JokeTeller struct {
	client jokes.Client
	prompt *prompt.Prompter
	out    io.Writer
}

// NewJokeTeller constructs a JokeTeller.
func NewJokeTeller(client jokes.Client, p *prompt.Prompter, out io.Writer) *JokeTeller {
	return &JokeTeller{client: client, prompt: p, out: out}
}

// Tell fetches and prints one joke. A failed fetch is reported to the user
// and is not an error; only a broken input is.
func (t *JokeTeller) Tell(ctx context.Context) error {
	j, err := t.client.Random(ctx)
	if err != nil {
		logger.Warn(ctx, "could not fetch joke", zap.Error(err))
		_, _ = fmt.Fprintln(t.out, "Couldn't fetch joke right now.")

		return nil
	}

	_, _ = fmt.Fprintf(t.out, "\n😄 BONUS JOKE:\n%s\n", j.Setup)
	if err := t.prompt.WaitEnter(ctx, "Press Enter for punchline..."); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(t.out, "👉 %s\n\n", j.Punchline)

	return nil
}
