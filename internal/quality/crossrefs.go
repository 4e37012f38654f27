package quality

import (
	"fmt"
	"path"
	"strings"
)

// CrossRefs flags relative document links that lack a #section anchor
// where the link text suggests the reader is being sent to a specific
// topic rather than a whole page.
type CrossRefs struct {
	id       string
	keywords []string
}

func NewCrossRefs(keywords []string) *CrossRefs {
	return &CrossRefs{id: "docs:cross-refs", keywords: keywords}
}

func (x *CrossRefs) ID() string { return x.id }

func (x *CrossRefs) Run(c *Corpus) []string {
	var issues []string
	for _, doc := range c.Docs {
		for _, link := range ExtractLinks([]byte(doc.Content)) {
			if !strings.HasPrefix(link.Destination, "./") {
				continue
			}
			if !strings.HasSuffix(link.Destination, ".md") {
				continue
			}
			if strings.Contains(link.Destination, "#") {
				continue
			}
			if x.topical(link.Text) {
				issues = append(issues, fmt.Sprintf("missing anchor in %s: [%s](%s) - consider adding #section",
					path.Base(doc.Path), link.Text, link.Destination))
			}
		}
	}
	return issues
}

func (x *CrossRefs) topical(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range x.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
