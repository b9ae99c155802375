// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"sunder/internal/observability"
)

// ErrUnsupportedInput is returned for inputs no preprocessor can turn into text.
var ErrUnsupportedInput = errors.New("unsupported input")

// MaxInputBytes caps how much text is read from a file or stream.
const MaxInputBytes = 100 * 1024 * 1024

// ProcessedContent represents content that has been processed by a preprocessor
type ProcessedContent struct {
	// Original input information
	OriginalPath string
	Filename     string

	// Extracted content
	Text string

	// Content metadata
	Format    string
	PageCount int
	WordCount int
	CharCount int
	LineCount int

	// Processing information
	ProcessorType string
}

// newProcessedContent fills in the counts derived from text.
func newProcessedContent(path, text, format, processorType string) *ProcessedContent {
	return &ProcessedContent{
		OriginalPath:  path,
		Filename:      filepath.Base(path),
		Text:          text,
		Format:        format,
		WordCount:     len(strings.Fields(text)),
		CharCount:     utf8.RuneCountInString(text),
		LineCount:     strings.Count(text, "\n") + 1,
		ProcessorType: processorType,
	}
}

// Preprocessor interface defines methods for preprocessing files
type Preprocessor interface {
	// CanProcess checks if this preprocessor can handle the given file
	CanProcess(filePath string) bool

	// Process extracts text from the file
	Process(filePath string) (*ProcessedContent, error)

	// GetName returns the name of this preprocessor
	GetName() string

	// GetSupportedExtensions returns the file extensions this preprocessor supports
	GetSupportedExtensions() []string

	// SetObserver sets the observability component
	SetObserver(observer *observability.StandardObserver)
}

// PreprocessorManager manages all available preprocessors
type PreprocessorManager struct {
	preprocessors []Preprocessor
}

// NewPreprocessorManager creates a new preprocessor manager
func NewPreprocessorManager() *PreprocessorManager {
	return &PreprocessorManager{
		preprocessors: make([]Preprocessor, 0),
	}
}

// NewDefaultManager returns a manager with the PDF and plain text
// preprocessors registered, both reporting to observer.
func NewDefaultManager(observer *observability.StandardObserver) *PreprocessorManager {
	pm := NewPreprocessorManager()
	for _, p := range []Preprocessor{NewPDFPreprocessor(), NewPlainTextPreprocessor()} {
		p.SetObserver(observer)
		pm.RegisterPreprocessor(p)
	}
	return pm
}

// RegisterPreprocessor adds a preprocessor to the manager
func (pm *PreprocessorManager) RegisterPreprocessor(p Preprocessor) {
	pm.preprocessors = append(pm.preprocessors, p)
}

// GetPreprocessor returns the appropriate preprocessor for a file, or nil if none found
func (pm *PreprocessorManager) GetPreprocessor(filePath string) Preprocessor {
	for _, p := range pm.preprocessors {
		if p.CanProcess(filePath) {
			return p
		}
	}
	return nil
}

// GetAvailablePreprocessors returns all registered preprocessors
func (pm *PreprocessorManager) GetAvailablePreprocessors() []Preprocessor {
	return pm.preprocessors
}

// ProcessFile extracts text with the first preprocessor that accepts the file.
func (pm *PreprocessorManager) ProcessFile(filePath string) (*ProcessedContent, error) {
	p := pm.GetPreprocessor(filePath)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, filePath)
	}
	return p.Process(filePath)
}

// ProcessReader reads text from r, such as stdin. name labels the result.
func ProcessReader(name string, r io.Reader) (*ProcessedContent, error) {
	text, err := readText(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return newProcessedContent(name, text, "Plain Text", "stream"), nil
}

// readText reads at most MaxInputBytes and rejects binary data.
func readText(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) > MaxInputBytes {
		return "", fmt.Errorf("input too large (max: %d bytes)", MaxInputBytes)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: input is not valid UTF-8 text", ErrUnsupportedInput)
	}
	return string(data), nil
}
