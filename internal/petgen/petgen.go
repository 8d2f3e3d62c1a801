// Package petgen runs the interactive random pet picture and fact session.
package petgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"pubapis/internal/prompt"
	"pubapis/pkg/logger"
	"pubapis/pkg/pets"
	"strings"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

const lineWidth = 50

// Kind describes the animal a session is about.
type Kind struct {
	// Name is the lower-case animal name used in sentences.
	Name string
	// Label is the capitalised name used at the start of lines.
	Label string
	// Emoji decorates the banner.
	Emoji string
	// FetchEmoji prefixes the picture fetch line.
	FetchEmoji string
	// ShowBreed prints the breed parsed from the picture URL.
	ShowBreed bool
	// ReadyLine is printed after a successfully fetched picture when non-empty.
	ReadyLine string
}

var (
	// Cat is a cat session backed by The Cat API.
	Cat = Kind{ //nolint: gochecknoglobals
		Name:       "cat",
		Label:      "Cat",
		Emoji:      "😺",
		FetchEmoji: "🐱",
		ReadyLine:  "😸 Ready to see an adorable cat!",
	}
	// Dog is a dog session backed by the Dog CEO API.
	Dog = Kind{ //nolint: gochecknoglobals
		Name:       "dog",
		Label:      "Dog",
		Emoji:      "🐶",
		FetchEmoji: "🐕",
		ShowBreed:  true,
	}
)

// Opener opens a URL for the user.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs in the system browser.
type BrowserOpener struct{}

// Open implements Opener.
func (BrowserOpener) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("could not open browser: %w", err)
	}

	return nil
}

// Options alters the interactive flow.
type Options struct {
	// Once runs a single round without any prompt.
	Once bool
	// AutoOpen opens the picture without asking.
	AutoOpen bool
}

// Generator is one session. It is not safe for concurrent use.
type Generator struct {
	kind   Kind
	client pets.Client
	prompt *prompt.Prompter
	opener Opener
	out    io.Writer
	opts   Options
}

// New constructs a Generator writing to out and reading answers via p.
func New(kind Kind, client pets.Client, p *prompt.Prompter, opener Opener, out io.Writer, opts Options) *Generator {
	return &Generator{kind: kind, client: client, prompt: p, opener: opener, out: out, opts: opts}
}

// Run plays rounds until the user declines another one. Fetch failures are
// reported and never end the session; only a cancelled context or a broken
// terminal does.
func (g *Generator) Run(ctx context.Context) error {
	for {
		if err := g.Round(ctx); err != nil {
			return err
		}
		if g.opts.Once {
			return nil
		}

		again, err := g.prompt.Confirm(ctx, fmt.Sprintf("\nWant to see another %s? (yes/no): ", g.kind.Name))
		if err != nil {
			return err
		}
		if !again {
			g.printf("\n🐾 Thanks for playing! See you next time! 🐾\n")

			return nil
		}
		g.printf("\n\n")
	}
}

// Round fetches and prints one picture and one fact, then offers to open
// the picture.
func (g *Generator) Round(ctx context.Context) error {
	rule := strings.Repeat("=", lineWidth)
	g.printf("%s\n%s RANDOM %s PICTURE & FACT GENERATOR %s\n%s\n\n",
		rule, g.kind.Emoji, strings.ToUpper(g.kind.Name), g.kind.Emoji, rule)

	g.printf("%s Fetching a random %s picture...\n", g.kind.FetchEmoji, g.kind.Name)
	imageURL, err := g.client.RandomImage(ctx)
	if err != nil {
		if isCanceled(ctx, err) {
			return err
		}
		logger.Warn(ctx, "could not fetch picture", zap.String("animal", g.kind.Name), zap.Error(err))
		g.printf("Error: %v\n", err)
	}

	g.printf("📚 Fetching a %s fact...\n", g.kind.Name)
	fact, err := g.client.RandomFact(ctx)
	if err != nil {
		if isCanceled(ctx, err) {
			return err
		}
		logger.Warn(ctx, "could not fetch fact", zap.String("animal", g.kind.Name), zap.Error(err))
		g.printf("Error: %v\n", err)
	}

	dashes := strings.Repeat("-", lineWidth)
	g.printf("\n%s\n", dashes)
	if imageURL != "" {
		g.printf("✅ %s Picture URL: %s\n", g.kind.Label, imageURL)
		if g.kind.ShowBreed {
			g.printf("%s Breed: %s\n", g.kind.FetchEmoji, pets.BreedFromURL(imageURL))
		}
		if g.kind.ReadyLine != "" {
			g.printf("%s\n", g.kind.ReadyLine)
		}
	} else {
		g.printf("❌ Could not fetch %s picture\n", g.kind.Name)
	}
	g.printf("\n")
	if fact != "" {
		g.printf("💡 %s Fact: %s\n", g.kind.Label, fact)
	} else {
		g.printf("❌ Could not fetch %s fact\n", g.kind.Name)
	}
	g.printf("\n%s\n", dashes)

	if imageURL == "" {
		return nil
	}

	return g.offerOpen(ctx, imageURL)
}

func (g *Generator) offerOpen(ctx context.Context, imageURL string) error {
	open := g.opts.AutoOpen
	if !open {
		if g.opts.Once {
			return nil
		}

		var err error
		open, err = g.prompt.Confirm(ctx, fmt.Sprintf("\nWould you like to open the %s picture in your browser? (yes/no): ", g.kind.Name))
		if err != nil {
			return err
		}
	}

	if !open {
		g.printf("👋 Thanks for using the %s Generator!\n", g.kind.Label)

		return nil
	}

	g.printf("🌐 Opening image in browser...\n")
	if err := g.opener.Open(imageURL); err != nil {
		logger.Warn(ctx, "could not open picture", zap.String("url", imageURL), zap.Error(err))
		g.printf("❌ Could not open the browser: %v\n", err)
	}

	return nil
}

func (g *Generator) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}

func isCanceled(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}
