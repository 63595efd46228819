package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// supportedExtensions lists the document types LoadDocument can read
var supportedExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// IsSupported reports whether ReadDocument can handle the file's extension.
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// LoadDocument reads a text, HTML, PDF, or DOCX document and returns its cleaned text.
func LoadDocument(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return "", &ReadError{Path: path, Message: "unsupported file format " + ext}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ReadError{Path: path, Message: "file not found", Cause: err}
		}
		return "", &ReadError{Path: path, Message: "failed to read file", Cause: err}
	}

	switch ext {
	case ".pdf":
		text, err := extractPDF(content)
		if err != nil {
			return "", &ReadError{Path: path, Message: "failed to read PDF", Cause: err}
		}
		return CleanText(text), nil
	case ".docx":
		text, err := extractDOCX(content)
		if err != nil {
			return "", &ReadError{Path: path, Message: "failed to read DOCX", Cause: err}
		}
		return CleanText(text), nil
	}

	if !utf8.Valid(content) {
		content = []byte(strings.ToValidUTF8(string(content), ""))
	}

	text := string(content)
	if ext == ".html" || ext == ".htm" || LooksLikeHTML(text) {
		return HTMLToText(text)
	}

	return CleanText(text), nil
}

// ReadDocument is the never-failing form of LoadDocument: any failure yields an empty string,
// which downstream extraction reports as a parsing failure.
func ReadDocument(path string) string {
	text, err := LoadDocument(path)
	if err != nil {
		return ""
	}
	return text
}
