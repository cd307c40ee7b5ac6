// Package export renders notes into standalone HTML documents.
package export

import (
	"bytes"
	"fmt"
	stdhtml "html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// engine is stateless, so a single instance serves every export without
// additional locking.
var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

const page = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// HTML converts a note's Markdown content into a minimal standalone HTML
// page titled after the note.
func HTML(title, markdown string) ([]byte, error) {
	var body bytes.Buffer
	if err := engine.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return fmt.Appendf(nil, page, stdhtml.EscapeString(title), body.String()), nil
}
