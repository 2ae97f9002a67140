package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/sandevgo/tuskmemo/internal/core"
	"github.com/sandevgo/tuskmemo/pkg/conv"
)

var pageTmpl = template.Must(template.New("memo").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body class="confidence-{{.Confidence}}">
{{.Body}}
</body>
</html>
`))

// HTML renders a standalone page. The body goes through the sanitizing
// markdown pipeline.
func HTML(m *core.Memo) (string, error) {
	if m == nil {
		return "", fmt.Errorf("render html: nil memo")
	}

	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		Title      string
		Confidence core.Confidence
		Body       template.HTML
	}{
		Title:      m.MeetingTitle,
		Confidence: m.Metadata.Confidence,
		// sanitized by conv
		Body: template.HTML(conv.MarkdownToHTML([]byte(Markdown(m)))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}
