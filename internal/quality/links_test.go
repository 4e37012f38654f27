package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	source := []byte(`# Guide

See the [Error Handling Guide](./error-handling.md) and the
[Transport Guide](./transports.md#quick-selection-guide).

![diagram](./images/flow.png)

[![2-Click Report →](https://img.shields.io/badge/report-red)](https://example.com/issues/new)
`)

	links := ExtractLinks(source)
	require.Len(t, links, 3)

	assert.Equal(t, "Error Handling Guide", links[0].Text)
	assert.Equal(t, "./error-handling.md", links[0].Destination)

	assert.Equal(t, "Transport Guide", links[1].Text)
	assert.Equal(t, "./transports.md#quick-selection-guide", links[1].Destination)

	// The badge is a link wrapping an image: the destination counts, the
	// image contributes no text.
	assert.Equal(t, "", links[2].Text)
	assert.Equal(t, "https://example.com/issues/new", links[2].Destination)
}

func TestExtractLinksNone(t *testing.T) {
	assert.Empty(t, ExtractLinks([]byte("# Plain\n\nNo links here.\n")))
}
