package quality

import (
	"fmt"
	"strings"
)

// Duplicates flags key phrases that appear in more than one document.
// Repeated marketing phrasing is the usual symptom of copy-pasted sections
// that should live in exactly one guide.
type Duplicates struct {
	id      string
	phrases []string
}

func NewDuplicates(phrases []string) *Duplicates {
	return &Duplicates{id: "docs:duplicates", phrases: phrases}
}

func (d *Duplicates) ID() string { return d.id }

func (d *Duplicates) Run(c *Corpus) []string {
	var issues []string
	for _, phrase := range d.phrases {
		needle := strings.ToLower(phrase)

		var locations []string
		for _, doc := range c.Docs {
			if strings.Contains(strings.ToLower(doc.Content), needle) {
				locations = append(locations, doc.Path)
			}
		}

		if len(locations) > 1 {
			issues = append(issues, fmt.Sprintf("duplicate content %q in: %s", phrase, strings.Join(locations, ", ")))
		}
	}
	return issues
}
