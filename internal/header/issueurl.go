package header

import (
	"fmt"
	"net/url"
	"path"
)

// issueBody is the pre-filled 2-click report template. The reporter only
// has to describe the problem and submit.
const issueBody = `<!-- Thank you for helping us improve! Your report helps maintain our high documentation standards. -->

### 📍 Document Details
- **File:** ` + "`%s`" + `
- **Type:** %s
- **URL:** [%s](%s/blob/main/%s)

### Bug: Issue Description
<!-- Please describe what's wrong with the documentation (required) -->



### Note: Suggested Fix (Optional)
<!-- If you know how to fix it, please share! -->



---
*Thank you for helping us maintain the highest documentation standards! Thanks*
*This issue was created using the 2-click reporting system*`

// IssueURL builds the deterministic 2-click GitHub issue link for a
// document, with title, labels, and body pre-filled.
func IssueURL(repoURL, docPath string, manual bool) string {
	title := fmt.Sprintf("## Documentation Issue: %s", path.Base(docPath))

	labels := "documentation,auto-generated"
	docType := "Auto-Generated"
	if manual {
		labels = "documentation,good first issue"
		docType = "Manually Written"
	}

	params := url.Values{}
	params.Set("title", title)
	params.Set("labels", labels)
	params.Set("body", fmt.Sprintf(issueBody, docPath, docType, docPath, repoURL, docPath))

	return repoURL + "/issues/new?" + params.Encode()
}
