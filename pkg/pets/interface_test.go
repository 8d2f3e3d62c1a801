package pets_test

import (
	"pubapis/pkg/pets"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBreedFromURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg", "Hound Afghan"},
		{"https://images.dog.ceo/breeds/retriever-golden/n02099601_100.jpg", "Retriever Golden"},
		{"https://images.dog.ceo/breeds/pug/n02110958_1975.jpg", "Pug"},
		{"https://images.dog.ceo/breeds/", pets.UnknownBreed},
		{"https://cdn2.thecatapi.com/images/abc.jpg", pets.UnknownBreed},
		{"", pets.UnknownBreed},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, pets.BreedFromURL(tc.in), tc.in)
	}
}
