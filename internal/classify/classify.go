// Package classify tags documents as manually written or generated.
package classify

// Class says whether a document's prose is hand-authored or produced
// mechanically from source comments.
type Class string

const (
	Manual    Class = "manual"
	Generated Class = "generated"
)

// Classifier matches document file names against two static lists.
type Classifier struct {
	manual    map[string]struct{}
	generated map[string]struct{}
}

// New builds a Classifier from the configured name lists.
func New(manual, generated []string) *Classifier {
	c := &Classifier{
		manual:    make(map[string]struct{}, len(manual)),
		generated: make(map[string]struct{}, len(generated)),
	}
	for _, name := range manual {
		c.manual[name] = struct{}{}
	}
	for _, name := range generated {
		c.generated[name] = struct{}{}
	}
	return c
}

// Classify returns the class for a document file name. Matching is
// case-sensitive; unrecognized names default to Manual, which keeps the
// lower-friction report label for new documents.
func (c *Classifier) Classify(name string) Class {
	if _, ok := c.manual[name]; ok {
		return Manual
	}
	if _, ok := c.generated[name]; ok {
		return Generated
	}
	return Manual
}
