package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Electronics", "electronics"},
		{"spaces", "Books Education", "books-education"},
		{"punctuation collapses", "Home & Garden!!", "home-garden"},
		{"leading and trailing junk", "  --Toys--  ", "toys"},
		{"mixed separators", "Books / Education", "books-education"},
		{"digits kept", "Top 10 Deals", "top-10-deals"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	slug := Slugify("Home & Garden!!")
	assert.Equal(t, slug, Slugify(slug))
}
