// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"sunder/internal/observability"
)

// DefaultMaxPages bounds extraction time on very large documents.
const DefaultMaxPages = 50

// PDFPreprocessor extracts the plain text of each page of a PDF.
type PDFPreprocessor struct {
	observer *observability.StandardObserver
	maxPages int
}

// NewPDFPreprocessor creates a new PDF preprocessor
func NewPDFPreprocessor() *PDFPreprocessor {
	return &PDFPreprocessor{maxPages: DefaultMaxPages}
}

// SetObserver sets the observability component
func (pp *PDFPreprocessor) SetObserver(observer *observability.StandardObserver) {
	pp.observer = observer
}

// GetName returns the name of this preprocessor
func (pp *PDFPreprocessor) GetName() string {
	return "PDF Text Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (pp *PDFPreprocessor) GetSupportedExtensions() []string {
	return []string{".pdf"}
}

// CanProcess checks if this preprocessor can handle the given file
func (pp *PDFPreprocessor) CanProcess(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".pdf"
}

// Process extracts text page by page. Pages that fail to decode are
// skipped; a document with no readable page is an error.
func (pp *PDFPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	finish := pp.observer.StartTiming("pdf_preprocessor", "process_file")

	f, r, err := pdf.Open(filepath.Clean(filePath))
	if err != nil {
		if f != nil {
			f.Close()
		}
		finish(false)
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > pp.maxPages {
		pageCount = pp.maxPages
	}

	var pages []string
	failed := 0
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			failed++
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			failed++
			continue
		}
		pages = append(pages, strings.TrimRight(text, "\n"))
	}

	if len(pages) == 0 && pageCount > 0 {
		finish(false, "pages", pageCount)
		return nil, fmt.Errorf("%w: no readable text in %s", ErrUnsupportedInput, filePath)
	}

	result := newProcessedContent(filePath, strings.Join(pages, "\n\n"), "PDF", "pdf")
	result.PageCount = pageCount
	finish(true, "pages", pageCount, "failed_pages", failed)
	return result, nil
}
