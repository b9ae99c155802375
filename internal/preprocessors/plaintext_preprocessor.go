// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"sunder/internal/observability"
)

// PlainTextPreprocessor passes text files through unchanged so they take
// the same path as extracted documents.
type PlainTextPreprocessor struct {
	observer *observability.StandardObserver
}

// NewPlainTextPreprocessor creates a new plain text preprocessor
func NewPlainTextPreprocessor() *PlainTextPreprocessor {
	return &PlainTextPreprocessor{}
}

// SetObserver sets the observability component
func (ptp *PlainTextPreprocessor) SetObserver(observer *observability.StandardObserver) {
	ptp.observer = observer
}

// GetName returns the name of this preprocessor
func (ptp *PlainTextPreprocessor) GetName() string {
	return "Plain Text Preprocessor"
}

// GetSupportedExtensions returns the file extensions this preprocessor supports
func (ptp *PlainTextPreprocessor) GetSupportedExtensions() []string {
	return []string{
		// Plain text and chat transcripts
		".txt", ".text", ".log", ".md", ".markdown", ".rst", ".eml",
		// Configuration files
		".yaml", ".yml", ".json", ".xml", ".toml", ".ini", ".conf", ".cfg", ".env",
		// Source code and scripts
		".py", ".js", ".ts", ".java", ".c", ".h", ".go", ".rs", ".rb", ".sh", ".sql", ".html",
		// Data files
		".csv", ".tsv", ".jsonl", ".ndjson",
	}
}

// CanProcess checks if this preprocessor can handle the given file. Files
// without an extension are accepted when their first bytes look like text.
func (ptp *PlainTextPreprocessor) CanProcess(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == "" {
		return looksLikeText(filePath)
	}
	for _, supported := range ptp.GetSupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Process reads the file as UTF-8 text.
func (ptp *PlainTextPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	finish := ptp.observer.StartTiming("plaintext_preprocessor", "process_file")

	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		finish(false)
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	text, err := readText(file)
	if err != nil {
		finish(false)
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	result := newProcessedContent(filePath, text, "Plain Text", "plaintext")
	finish(true, "words", result.WordCount, "lines", result.LineCount)
	return result, nil
}

// looksLikeText sniffs the first 512 bytes for NULs and invalid UTF-8.
func looksLikeText(filePath string) bool {
	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return false
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false
	}
	buf = buf[:n]
	if bytes.IndexByte(buf, 0) >= 0 {
		return false
	}
	if n == 512 {
		// a multi-byte rune may straddle the cut
		for i := 0; i < utf8.UTFMax-1 && len(buf) > 0 && !utf8.Valid(buf); i++ {
			buf = buf[:len(buf)-1]
		}
	}
	return utf8.Valid(buf)
}
