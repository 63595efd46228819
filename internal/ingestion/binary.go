package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// docxBody is the path of the main document part inside a DOCX archive
const docxBody = "word/document.xml"

// extractPDF returns the plain text of a PDF document. The PDF reader panics on some
// malformed files; that is reported as an error.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}
	return buf.String(), nil
}

// extractDOCX returns the paragraph text of a DOCX document, one paragraph per line.
func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty DOCX document")
	}
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	for _, file := range archive.File {
		if strings.ReplaceAll(file.Name, "\\", "/") != docxBody {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", docxBody, err)
		}
		defer rc.Close()
		return docxText(rc)
	}
	return "", fmt.Errorf("%s not found in DOCX archive", docxBody)
}

func docxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var sb strings.Builder
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse %s: %w", docxBody, err)
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			if t.Name.Local == "tab" {
				sb.WriteString(" ")
			}
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String(), nil
}
