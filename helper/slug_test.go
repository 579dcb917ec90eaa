package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"First Light", "first-light"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Hyphen - and_underscore/slash", "hyphen-and-underscore-slash"},
		{"Punctuation, stripped!", "punctuation-stripped"},
		{"Numbers 2024 stay", "numbers-2024-stay"},
		{"Déjà vu", "dj-vu"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "rejection_reason", Underscore("RejectionReason"))
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "author_reveal_date", Underscore("AuthorRevealDate"))
}
