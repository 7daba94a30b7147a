package reaper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionAtLeast(t *testing.T) {
	cases := []struct {
		have, want string
		atLeast    bool
	}{
		{"5.95", "5.95", true},
		{"5.94", "5.95", false},
		{"5.95", "5.94", true},
		{"6.80", "5.95", true},
		{"10.0", "5.95", true},
		{"5.9", "5.95", false},
		{"6.80/x64", "6.80", true},
		{"6.80/x64", "6.81", false},
		{"6.80", "6.80/x64", true},
		{"12+dev0617", "12", true},
		{"12+dev0617", "12.1", false},
		{"7", "6.99", true},
		{"6.0", "6", true},
		{"6", "6.0", true},
	}
	for _, c := range cases {
		got := ParseVersion(c.have).AtLeast(ParseVersion(c.want))
		if got != c.atLeast {
			t.Errorf("AtLeast(%q, %q) = %v, want %v", c.have, c.want, got, c.atLeast)
		}
	}
}

func TestVersionStringKeepsRawForm(t *testing.T) {
	require.Equal(t, "6.80/x64", ParseVersion("6.80/x64").String())
	require.Equal(t, "12+dev0617", ParseVersion("12+dev0617").String())
}
