package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ScannedTextThreshold is the minimum number of extracted characters below
// which a document is treated as scanned (image-only). It is a heuristic on
// the trimmed text, not a content check.
const ScannedTextThreshold = 100

type PDFParserService interface {
	ExtractText(filePath string) (string, error)
	IsScanned(text string) bool
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText concatenates the plain text of every page in document order,
// separated by newlines. Pages that yield no text are skipped; an empty
// result is not an error here, the scanned check decides what to do with it.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func (p *pdfParserService) IsScanned(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < ScannedTextThreshold
}
