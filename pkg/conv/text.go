package conv

import (
	"strings"

	"github.com/inbucket/html2text"
)

// HTMLToText flattens an HTML fragment to plain text. Input without markup
// is returned trimmed but otherwise untouched.
func HTMLToText(s string) (string, error) {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s), nil
	}

	text, err := html2text.FromString(s, html2text.Options{OmitLinks: true})
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(text), " "), nil
}
