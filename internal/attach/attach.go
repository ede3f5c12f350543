// Package attach validates chat attachments and produces the placeholder text
// that stands in for their content.
package attach

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// MaxSize is the largest accepted attachment, exclusive.
const MaxSize = 10 * 1024 * 1024

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrUnsupportedAttachment = errors.New("please select a PDF or DOC/DOCX file")
	ErrAttachmentTooLarge    = errors.New("file size must be less than 10MB")
)

var allowedMime = map[string]bool{MimePDF: true, MimeDOC: true, MimeDOCX: true}

var mimeByExt = map[string]string{".pdf": MimePDF, ".doc": MimeDOC, ".docx": MimeDOCX}

// Attachment is an uploaded file held in memory.
type Attachment struct {
	Name string
	Mime string
	Data []byte
}

// DetectMime falls back to the file extension when the client sent no usable
// content type.
func DetectMime(name, mime string) string {
	if allowedMime[mime] {
		return mime
	}
	if m, ok := mimeByExt[strings.ToLower(filepath.Ext(name))]; ok && (mime == "" || mime == "application/octet-stream") {
		return m
	}
	return mime
}

// Validate accepts PDF, DOC and DOCX files up to 10MB.
func Validate(name, mime string, size int64) error {
	if !allowedMime[DetectMime(name, mime)] {
		return fmt.Errorf("%s: %w", name, ErrUnsupportedAttachment)
	}
	if size > MaxSize {
		return fmt.Errorf("%s: %w", name, ErrAttachmentTooLarge)
	}
	return nil
}

// Extractor turns attachments into chat text after a simulated delay.
type Extractor struct {
	delay time.Duration
}

// NewExtractor creates an extractor that waits delay before answering.
func NewExtractor(delay time.Duration) *Extractor {
	return &Extractor{delay: delay}
}

// Extract returns placeholder text for a. PDFs that parse report their page
// count. Only context cancellation is an error.
func (e *Extractor) Extract(ctx context.Context, a Attachment) (string, error) {
	if e.delay > 0 {
		t := time.NewTimer(e.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[Attached file: %s]\n\n", a.Name)
	if DetectMime(a.Name, a.Mime) == MimePDF {
		if pages, err := PageCount(a.Data); err == nil {
			fmt.Fprintf(&b, "PDF document with %d page(s).\n\n", pages)
		} else {
			slog.Warn("could not read pdf", "name", a.Name, "error", err)
		}
	}
	b.WriteString("File content would be extracted here using a PDF/DOC parser library.")
	return b.String(), nil
}

// PageCount reads the number of pages of an in-memory PDF.
func PageCount(data []byte) (n int, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return reader.NumPage(), nil
}
