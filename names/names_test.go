package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  FC  Barcelona ", "fc barcelona"},
		{"Real Madrid C.F.", "real madrid cf"},
		{"LA Lakers", "la lakers"},
		{"Saint-Étienne", "saintétienne"},
		{"A.C.   Milan!!", "ac milan"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestSplitMatch(t *testing.T) {
	home, away, ok := SplitMatch("Real Madrid vs Liverpool")
	assert.True(t, ok)
	assert.Equal(t, "real madrid", home)
	assert.Equal(t, "liverpool", away)

	home, away, ok = SplitMatch("Inter - Juventus")
	assert.True(t, ok)
	assert.Equal(t, "inter", home)
	assert.Equal(t, "juventus", away)

	// case-insensitive separator
	home, away, ok = SplitMatch("Denver Nuggets VS LA Lakers")
	assert.True(t, ok)
	assert.Equal(t, "denver nuggets", home)
	assert.Equal(t, "la lakers", away)

	_, _, ok = SplitMatch("no separator here")
	assert.False(t, ok)

	_, _, ok = SplitMatch(" vs Liverpool")
	assert.False(t, ok)

	_, _, ok = SplitMatch("")
	assert.False(t, ok)
}

func TestFuzzyEqual(t *testing.T) {
	assert.True(t, FuzzyEqual("lakers", "los angeles lakers"))
	assert.True(t, FuzzyEqual("los angeles lakers", "lakers"))
	assert.True(t, FuzzyEqual("la lakers", "lakers"))
	assert.True(t, FuzzyEqual("inter", "inter"))
	assert.False(t, FuzzyEqual("inter", "juventus"))
	assert.False(t, FuzzyEqual("", "inter"))
	assert.False(t, FuzzyEqual("inter", ""))
}
