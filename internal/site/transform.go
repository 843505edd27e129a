package site

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/workspace"
)

// WrappedSuffix is appended to the names of wrapped files.
const WrappedSuffix = ".md"

// TransformToMarkdown reads sourceFile and wraps its content in a fenced block:
//
//	# <file name without "~">
//	```<tag>
//	<content>
//	```
//
// A file that vanished before it could be read is wrapped as empty content; a file
// that cannot be read is an error.
func TransformToMarkdown(sourceFile string, c *Classifier) ([]byte, error) {
	content, err := workspace.ReadFile(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTransformFailed, sourceFile, err)
	}
	name := filepath.Base(sourceFile)
	return WrapMarkdown(strings.TrimPrefix(name, ForcePrefix), c.TagFor(name), content), nil
}

// WrapMarkdown renders the fenced Markdown document for content.
func WrapMarkdown(title, tag string, content []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(title) + len(tag) + len(content) + 16)
	buf.WriteString("# ")
	buf.WriteString(title)
	buf.WriteString("\n```")
	buf.WriteString(tag)
	buf.WriteByte('\n')
	buf.Write(content)
	buf.WriteString("\n```")
	return buf.Bytes()
}
