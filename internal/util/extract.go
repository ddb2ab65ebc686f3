package util

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/gen2brain/go-fitz"
)

// SupportedExtensions lists the résumé formats the extractor understands.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

func IsSupported(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ExtractText returns the plain text of a PDF or DOCX file. Failures are
// logged and yield an empty string.
func ExtractText(path string) string {
	var (
		text string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	default:
		err = fmt.Errorf("unsupported file type: %s", ext)
	}
	if err != nil {
		slog.Error("text extraction failed", "file", filepath.Base(path), "err", err)
		return ""
	}
	return text
}

func extractPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			slog.Warn("skipping unreadable PDF page", "file", filepath.Base(path), "page", n+1, "err", err)
			continue
		}
		if pageText = strings.TrimSpace(pageText); pageText != "" {
			pages = append(pages, pageText)
		}
	}
	return strings.Join(pages, " "), nil
}

func extractDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer f.Close()

	body, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", fmt.Errorf("failed to convert DOCX: %w", err)
	}
	return strings.Join(strings.Fields(body), " "), nil
}
