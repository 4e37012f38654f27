// Package header detects, strips, and renders the versioned metadata
// headers carried by every published document.
package header

import "strings"

// Version identifies the header generation a document carries.
type Version int

const (
	None Version = iota
	V1
	V2
	V3
)

// Current is the header generation this tool writes.
const Current = V3

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	case V3:
		return "v3"
	default:
		return "none"
	}
}

// detectWindow bounds how far into a document markers are searched.
// Header blocks always sit at the top; a generous window avoids matching
// marker-like text deep in the body.
const detectWindow = 40

// Marker substrings are unique, multi-word strings that only occur inside
// header blocks. Later generations embed earlier markers (a v3 block
// contains the v2 metadata banner), so detection checks newest first.
var markers = []struct {
	version Version
	needles []string
}{
	{V3, []string{"2-Click Report →"}},
	{V2, []string{"DOCUMENTATION METADATA", "AUTO-GENERATED DOCUMENTATION"}},
	{V1, []string{"<!-- Document Type:", "Report Documentation Issue"}},
}

// Detect returns the newest header generation whose marker appears in the
// leading region of content, or None.
func Detect(content string) Version {
	leading := leadingRegion(content)
	for _, m := range markers {
		for _, needle := range m.needles {
			if strings.Contains(leading, needle) {
				return m.version
			}
		}
	}
	return None
}

func leadingRegion(content string) string {
	lines := strings.SplitN(content, "\n", detectWindow+1)
	if len(lines) > detectWindow {
		lines = lines[:detectWindow]
	}
	return strings.Join(lines, "\n")
}
