package header

import "strings"

// Separator structure per generation: a v1 or v2 block ends at its first
// "---" line, a v3 block encloses the project banner between two.
var separatorCount = map[Version]int{
	V1: 1,
	V2: 1,
	V3: 2,
}

// Strip removes the leading header block of the given generation and
// returns the remaining body with no leading blank lines.
//
// The block is recognized as a whole: an HTML comment preamble containing
// the generation's marker, the expected number of "---" separator lines,
// and any trailing blanks. If the structure is incomplete (a partial or
// hand-edited header), Strip returns the content unchanged and ok=false;
// callers treat that as no header rather than guessing at a boundary.
// Body text containing "---" is never reached: consumption stops at the
// block's own final separator.
func Strip(content string, v Version) (body string, ok bool) {
	if v == None || v == Current {
		return content, false
	}

	lines := strings.Split(content, "\n")
	i := 0

	// Header blocks sit at the very top, at most preceded by blank lines.
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i >= len(lines) || !strings.HasPrefix(lines[i], "<!--") {
		return content, false
	}

	want := separatorCount[v]
	seen := 0
	markerFound := false
	for ; i < len(lines); i++ {
		if containsMarker(lines[i], v) {
			markerFound = true
		}
		if strings.TrimSpace(lines[i]) == "---" {
			seen++
			if seen == want {
				i++
				break
			}
		}
	}
	if seen < want || !markerFound {
		return content, false
	}

	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return strings.Join(lines[i:], "\n"), true
}

func containsMarker(line string, v Version) bool {
	for _, m := range markers {
		if m.version != v {
			continue
		}
		for _, needle := range m.needles {
			if strings.Contains(line, needle) {
				return true
			}
		}
	}
	return false
}
