// Package extractor turns uploaded documents into plain text.
package extractor

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrExtraction is wrapped by every failure to read a document.
var ErrExtraction = errors.New("document text extraction failed")

// Extractor pulls plain text out of a document buffer.
type Extractor interface {
	Extract(fileName string, data []byte) (string, error)
}

// New returns the default extractor: PDF by magic bytes, plain text/markdown otherwise.
func New() Extractor {
	return textExtractor{}
}

type textExtractor struct{}

func (textExtractor) Extract(fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty document %q", ErrExtraction, fileName)
	}
	if isPDF(data) {
		return extractPDF(data)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == ".pdf" {
		return "", fmt.Errorf("%w: %q claims pdf but is missing the %%PDF header", ErrExtraction, fileName)
	}
	if isProbablyText(data) {
		return collapseWhitespace(string(data)), nil
	}
	return "", fmt.Errorf("%w: unsupported document type %q", ErrExtraction, fileName)
}

// DecodeBase64 decodes an uploaded payload. A "data:...;base64," prefix is
// tolerated, as are the URL-safe and unpadded alphabets.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrExtraction)
	}

	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: payload is not valid base64", ErrExtraction)
}

func isPDF(b []byte) bool {
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

func isProbablyText(b []byte) bool {
	sample := b[:min(len(b), 4096)]
	good := 0
	for _, c := range sample {
		if c == 0x00 {
			return false
		}
		if c == '\n' || c == '\r' || c == '\t' || (c >= 0x20 && c <= 0x7E) || c >= 0x80 {
			good++
		}
	}
	return float64(good)/float64(len(sample)) > 0.9
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf parse panic: %v", ErrExtraction, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf reader: %v", ErrExtraction, err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: pdf plaintext: %v", ErrExtraction, err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("%w: pdf read: %v", ErrExtraction, err)
	}
	return collapseWhitespace(string(b)), nil
}

var (
	spaceRun   = regexp.MustCompile(`[ \t\f\v]+`)
	newlineRun = regexp.MustCompile(`\n{3,}`)
)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = spaceRun.ReplaceAllString(s, " ")
	s = newlineRun.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
