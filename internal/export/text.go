// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"time"

	"github.com/M7med7/Chatbot-Course-Project-CPIT305/internal/model"
)

var _ Exporter = (*TextExporter)(nil)

// TextExporter exports transcripts to the framed plain-text log format.
type TextExporter struct {
	// Clock supplies the export date. Defaults to time.Now.
	Clock func() time.Time
}

// NewTextExporter creates a new plain-text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{Clock: time.Now}
}

// SaveToFile writes msgs to path using the exporter's clock.
func (e *TextExporter) SaveToFile(path string, msgs []model.Message) (string, error) {
	return SaveToFile(path, msgs, e.now())
}

// FileExtension returns the text file extension.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

func (e *TextExporter) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock()
}
