package quality

import (
	"fmt"
	"path"
	"regexp"
)

// APIDocs flags hand-written API documentation in user guides. Signatures
// and type declarations belong in the generated reference, where they
// cannot drift from the source.
type APIDocs struct {
	id       string
	patterns []*regexp.Regexp
	// skip lists the generated documents, which legitimately contain
	// API-shaped content.
	skip map[string]struct{}
}

func NewAPIDocs(patterns []string, generatedDocs []string) (*APIDocs, error) {
	a := &APIDocs{
		id:   "docs:api-content",
		skip: make(map[string]struct{}, len(generatedDocs)),
	}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("api pattern %q: %w", p, err)
		}
		a.patterns = append(a.patterns, re)
	}
	for _, name := range generatedDocs {
		a.skip[name] = struct{}{}
	}
	return a, nil
}

func (a *APIDocs) ID() string { return a.id }

func (a *APIDocs) Run(c *Corpus) []string {
	var issues []string
	for _, doc := range c.Docs {
		if _, ok := a.skip[path.Base(doc.Path)]; ok {
			continue
		}
		for _, re := range a.patterns {
			if re.MatchString(doc.Content) {
				issues = append(issues, fmt.Sprintf("manual API docs found in %s - should be auto-generated", doc.Path))
				break
			}
		}
	}
	return issues
}
