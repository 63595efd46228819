package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelectors are elements whose text should end on its own line
const blockSelectors = "p, div, li, br, h1, h2, h3, h4, h5, h6, tr, section, article, header, footer"

// HTMLToText flattens an HTML document (for example a resume exported from a web builder)
// into plain text, keeping one line per block element.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &ReadError{Message: "failed to parse HTML", Cause: err}
	}

	// Remove elements that never carry resume content
	doc.Find("script, style, noscript, template, svg").Remove()

	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return CleanText(doc.Text()), nil
	}

	return CleanText(body.Text()), nil
}

// LooksLikeHTML reports whether content appears to be an HTML document.
func LooksLikeHTML(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") ||
		strings.Contains(head, "<body")
}

// ReadError represents a failure to read or decode a document
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	prefix := "read error"
	if e.Path != "" {
		prefix = fmt.Sprintf("read error (%s)", e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
