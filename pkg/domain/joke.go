package domain

// Joke is a two-part joke.
type Joke struct {
	ID        int
	Type      string
	Setup     string
	Punchline string
}
