package header

import (
	"fmt"
	"time"
)

const rule = "═══════════════════════════════════════════════════════════════"

// Banner holds the project strings embedded in every rendered header.
type Banner struct {
	Title           string
	Description     string
	Tagline         string
	GeneratedSource string
	GeneratedBy     string
}

// Renderer produces current-generation header blocks. Output is a pure
// function of the document path, classification, and body hash, apart from
// the injected clock.
type Renderer struct {
	RepoURL         string
	ContributingURL string
	Banner          Banner

	// Now is the timestamp source; tests pin it. Nil means time.Now.
	Now func() time.Time
}

const manualTemplate = `<!-- 
%[1]s
## DOCUMENTATION METADATA
%[1]s
Type: User Guide (Manually Written)
Path: %[2]s
Last Updated: %[3]s %[4]s
Hash: %[5]s
Repository: %[6]s
%[1]s
-->

<div align="center">

### Note: Documentation Type: **Manually Written Guide**

[![2-Click Report →](https://img.shields.io/badge/2--Click%%20Report%%20→-red?style=for-the-badge)](%[7]s)
[![Become a Contributor](https://img.shields.io/badge/Become%%20a%%20Contributor-blue?style=for-the-badge)](%[8]s)

**Thank you for helping us maintain the highest documentation standards!**
*Found an issue? Your 2-click report helps us improve. Want to do more? Join our contributors!*

</div>

---

`

const generatedTemplate = `<!-- 
%[1]s
🤖 AUTO-GENERATED DOCUMENTATION
%[1]s
Type: API Reference (Auto-Generated)
Source: %[2]s
Generated: %[3]s %[4]s
Generator: %[5]s
Hash: %[6]s
Repository: %[7]s
%[1]s
-->

<div align="center">

### 🤖 Documentation Type: **Auto-Generated from Source Code**

[![2-Click Report →](https://img.shields.io/badge/2--Click%%20Report%%20→-orange?style=for-the-badge)](%[8]s)

**Thank you for helping us maintain the highest documentation standards!**
*This documentation is automatically generated. To fix issues, please update the source code documentation.*

</div>

---

`

const bannerTemplate = `<div align="center">
<sub>

**# %s** - %s
*%s*

</sub>
</div>

---

`

// Render returns the full current-generation header for a document,
// ready to prepend to the body. bodyHash is the full content checksum;
// only its first 8 characters appear in the header.
func (r *Renderer) Render(docPath string, manual bool, bodyHash string) string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	ts := now().UTC()
	date := ts.Format("2006-01-02")
	clock := ts.Format("15:04:05") + " UTC"

	issue := IssueURL(r.RepoURL, docPath, manual)

	var head string
	if manual {
		head = fmt.Sprintf(manualTemplate,
			rule, docPath, date, clock, shortHash(bodyHash), r.RepoURL, issue, r.ContributingURL)
	} else {
		head = fmt.Sprintf(generatedTemplate,
			rule, r.Banner.GeneratedSource, date, clock, r.Banner.GeneratedBy, shortHash(bodyHash), r.RepoURL, issue)
	}

	return head + fmt.Sprintf(bannerTemplate, r.Banner.Title, r.Banner.Description, r.Banner.Tagline)
}

func shortHash(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}
