// Package pets defines the interface used to fetch random pet pictures and
// facts, plus helpers for interpreting the returned image URLs.
package pets

import (
	"context"
	"pubapis/pkg/textfmt"
	"strings"
)

// UnknownBreed is returned by BreedFromURL when the URL carries no breed.
const UnknownBreed = "Unknown"

// Client is the abstraction for pet picture & fact providers.
//
//go:generate mockgen -package mockpets -source=interface.go -destination=mock/mockpets.go *
type Client interface {
	// RandomImage returns the URL of a random picture.
	RandomImage(ctx context.Context) (string, error)
	// RandomFact returns a random fact as plain text.
	RandomFact(ctx context.Context) (string, error)
}

// BreedFromURL extracts the breed from a dog.ceo image URL such as
// https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg, which
// yields "Hound Afghan". It returns UnknownBreed when the URL has no
// /breeds/<name>/ segment.
func BreedFromURL(imageURL string) string {
	_, rest, ok := strings.Cut(imageURL, "/breeds/")
	if !ok {
		return UnknownBreed
	}
	breed, _, _ := strings.Cut(rest, "/")
	if breed == "" {
		return UnknownBreed
	}

	return textfmt.Title(breed)
}
