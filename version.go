package reaper

import "strings"

// Version is a REAPER version as reported by GetAppVersion, e.g. "6.80/x64".
// Comparison is numeric per dot-separated segment, so "10.0" sorts above
// "5.95". Trailing non-digits in a segment ("12+dev0617") are ignored for
// comparison but kept in the string.
type Version struct {
	raw string
}

func ParseVersion(s string) Version {
	return Version{raw: s}
}

func (v Version) String() string {
	return v.raw
}

// AtLeast reports whether v is the same version as w or a later one.
func (v Version) AtLeast(w Version) bool {
	return compareVersions(v.raw, w.raw) >= 0
}

func compareVersions(a, b string) int {
	as := versionSegments(a)
	bs := versionSegments(b)
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// versionSegments parses the numeric prefix of each dot-separated segment,
// stopping at the platform suffix ("/x64") if present.
func versionSegments(s string) []int {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, ".")
	segs := make([]int, 0, len(parts))
	for _, p := range parts {
		v := 0
		for _, c := range p {
			if c < '0' || c > '9' {
				break
			}
			v = v*10 + int(c-'0')
		}
		segs = append(segs, v)
	}
	return segs
}
